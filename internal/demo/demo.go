// Package demo runs the showcase scenarios of the kinepredict structures:
// keyword lookup, headline deduplication, content ranking and a pipeline
// combining all three the way a scoring service would.
package demo

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kinepredict/kinepredict/count"
	"github.com/kinepredict/kinepredict/filters"
	"github.com/kinepredict/kinepredict/internal/config"
	"github.com/kinepredict/kinepredict/queue"
	"github.com/kinepredict/kinepredict/textproc"
	"github.com/kinepredict/kinepredict/trie"
)

// Runner runs the scenarios with a fixed configuration
type Runner struct {
	config *config.Config
	logger *log.Logger
}

// NewRunner creates a Runner. _cfg_ is assumed to be validated.
func NewRunner(cfg *config.Config, logger *log.Logger) *Runner {
	return &Runner{config: cfg, logger: logger}
}

// TrieReport is the outcome of the Trie scenario
type TrieReport struct {
	Size        int
	Found       map[string]bool
	HasPrefix   bool
	Completions []string
}

// Trie indexes the configured keywords and completes the configured prefix
func (r *Runner) Trie() TrieReport {
	index := trie.New()
	index.InsertAll(r.config.Demo.Keywords...)

	report := TrieReport{
		Size:        index.Size(),
		Found:       make(map[string]bool, len(r.config.Demo.Keywords)),
		HasPrefix:   index.HasPrefix(r.config.Demo.Prefix),
		Completions: index.EntriesWithPrefix(r.config.Demo.Prefix),
	}
	for _, keyword := range r.config.Demo.Keywords {
		report.Found[keyword] = index.Contains(keyword)
	}
	slices.Sort(report.Completions)

	r.logger.Info("Indexed keywords", "count", report.Size, "keywords", strings.Join(r.config.Demo.Keywords, ", "))
	r.logger.Info("Prefix lookup", "prefix", r.config.Demo.Prefix, "present", report.HasPrefix, "completions", strings.Join(report.Completions, " "))
	return report
}

// BloomReport is the outcome of the Bloom scenario
type BloomReport struct {
	Added             []string
	Probed            map[string]bool
	FalsePositiveRate float64
	MemoryFootprint   uint64
}

// Bloom adds the configured headlines to a membership filter and probes
// them along with a headline that was never added.
func (r *Runner) Bloom() (BloomReport, error) {
	filter, err := r.newFilter()
	if err != nil {
		return BloomReport{}, err
	}
	report := BloomReport{Probed: map[string]bool{}}
	for _, headline := range r.config.Demo.Headlines {
		filter.AddString(headline.Text)
		report.Added = append(report.Added, headline.Text)
	}
	probes := append(slices.Clone(report.Added), "never published headline")
	for _, probe := range probes {
		report.Probed[probe] = filter.ContainsString(probe)
	}
	report.FalsePositiveRate = filter.EstimatedFalsePositiveRate()
	report.MemoryFootprint = filter.MemoryFootprint()

	r.logger.Info("Filled membership filter", "headlines", len(report.Added), "bits", filter.Cap(), "hashes", filter.NumHashes(), "strategy", filter.HashStrategy())
	for _, probe := range probes {
		r.logger.Info("Probe", "headline", probe, "probably_seen", report.Probed[probe])
	}
	r.logger.Info("Filter footprint", "bytes", report.MemoryFootprint, "estimated_fp_rate", report.FalsePositiveRate)
	return report, nil
}

// Rank pops the configured headlines best score first
func (r *Runner) Rank() []config.Headline {
	rankings := newRankings()
	for _, headline := range r.config.Demo.Headlines {
		rankings.Push(headline)
	}
	ranked := drainRankings(rankings)
	for i, headline := range ranked {
		r.logger.Info("Ranked", "rank", i+1, "headline", headline.Text, "score", headline.Score)
	}
	return ranked
}

// PipelineReport is the outcome of the Pipeline scenario
type PipelineReport struct {
	Ranked      []config.Headline
	Duplicates  []string
	Keywords    int
	Completions []string
	TopKeywords []count.TopKElement
}

// Pipeline tokenizes the configured headlines, drops the ones already seen,
// indexes and counts their keywords and ranks the unique ones by score.
func (r *Runner) Pipeline() (PipelineReport, error) {
	filter, err := r.newFilter()
	if err != nil {
		return PipelineReport{}, err
	}
	topk, err := count.NewTopK(r.config.TopK.K, r.config.TopK.ErrorRate, r.config.TopK.Accuracy)
	if err != nil {
		return PipelineReport{}, err
	}
	index := trie.New()
	rankings := newRankings()

	var report PipelineReport
	for _, headline := range r.config.Demo.Headlines {
		tokens := textproc.Tokenize(headline.Text)
		fingerprint := strings.Join(tokens, " ")
		if filter.ContainsString(fingerprint) {
			r.logger.Debug("Dropping duplicate", "headline", headline.Text, "fingerprint", fingerprint)
			report.Duplicates = append(report.Duplicates, headline.Text)
			continue
		}
		filter.AddString(fingerprint)
		index.InsertAll(tokens...)
		for _, token := range tokens {
			if err := topk.InsertString(token, 1); err != nil {
				return PipelineReport{}, err
			}
		}
		rankings.Push(headline)
	}

	report.Ranked = drainRankings(rankings)
	report.Keywords = index.Size()
	report.Completions = index.EntriesWithPrefix(r.config.Demo.Prefix)
	slices.Sort(report.Completions)
	report.TopKeywords = topk.Values()

	r.logger.Info("Pipeline done", "unique", len(report.Ranked), "duplicates", len(report.Duplicates), "keywords", report.Keywords)
	for i, headline := range report.Ranked {
		r.logger.Info("Ranked", "rank", i+1, "headline", headline.Text, "score", headline.Score)
	}
	for _, keyword := range report.TopKeywords {
		r.logger.Info("Top keyword", "keyword", keyword.Element, "count", keyword.Count)
	}
	r.logger.Info("Keyword completions", "prefix", r.config.Demo.Prefix, "completions", strings.Join(report.Completions, " "))
	return report, nil
}

func (r *Runner) newFilter() (*filters.MembershipFilter, error) {
	return filters.NewMembershipFilter(
		r.config.Filter.ExpectedElements,
		r.config.Filter.FalsePositiveRate,
		filters.WithHashStrategy(r.config.HashStrategy()),
	)
}

func newRankings() *queue.PriorityQueue[config.Headline] {
	return queue.NewWithComparator[config.Headline](queue.Reverse[config.Headline](func(a, b config.Headline) bool {
		return a.Score < b.Score
	}))
}

func drainRankings(rankings *queue.PriorityQueue[config.Headline]) []config.Headline {
	ranked := make([]config.Headline, 0, rankings.Len())
	for !rankings.IsEmpty() {
		headline, _ := rankings.Pop()
		ranked = append(ranked, headline)
	}
	return ranked
}
