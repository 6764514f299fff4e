package cmd

import (
	"github.com/spf13/cobra"
)

var trieCmd = &cobra.Command{
	Use:   "trie",
	Short: "Index keywords and complete a prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner("trie")
		if err != nil {
			return err
		}
		r.Trie()
		return nil
	},
}

var bloomCmd = &cobra.Command{
	Use:   "bloom",
	Short: "Detect repeated headlines with a membership filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner("bloom")
		if err != nil {
			return err
		}
		_, err = r.Bloom()
		return err
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank headlines by score, best first",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner("rank")
		if err != nil {
			return err
		}
		r.Rank()
		return nil
	},
}

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Tokenize, deduplicate, index and rank headlines",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner("pipeline")
		if err != nil {
			return err
		}
		_, err = r.Pipeline()
		return err
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner("kinepredict")
		if err != nil {
			return err
		}
		r.Trie()
		if _, err := r.Bloom(); err != nil {
			return err
		}
		r.Rank()
		_, err = r.Pipeline()
		return err
	},
}
