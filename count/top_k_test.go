package count

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kinepredict/kinepredict"
)

var items = []string{
	"apple",
	"orange",
	"banana",
	"carrot",
	"apple",
	"grape",
	"apple",
	"carrot",
	"apple",
	"banana",
	"plum",
	"plum",
	"peach",
	"apple",
	"carrot",
	"peach",
	"mango",
	"apple",
	"grape",
	"melon",
	"pineapple",
	"kiwi",
	"banana",
	"grape",
	"apple",
	"kiwi",
	"pineapple",
	"mango",
	"plum",
	"peach",
	"banana",
}

var expectedTopElements = []string{
	"apple",
	"banana",
	"carrot",
	"grape",
	"peach",
	"plum",
	"kiwi",
	"mango",
	"pineapple",
	"melon",
	"orange",
}

func TestTopKBasic(t *testing.T) {
	k := uint(5)
	errorRate := 0.001
	delta := 0.999
	topkSingleEntry, _ := NewTopK(k, errorRate, delta)

	frequencyMap := make(map[string]int)

	for i := range items {
		topkSingleEntry.Insert([]byte(items[i]), 1)
		frequencyMap[items[i]]++
	}

	topkBatchEntry, _ := NewTopK(k, errorRate, delta)
	for key, val := range frequencyMap {
		topkBatchEntry.Insert([]byte(key), uint64(val))
	}

	val1 := topkSingleEntry.Values()
	val2 := topkBatchEntry.Values()

	if !reflect.DeepEqual(val1, val2) {
		t.Errorf("both topk data structures should be equal, got %v and %v", val1, val2)
	}

	if len(val1) != int(k) {
		t.Fatalf("topk should hold %d values, found %d", k, len(val1))
	}

	for i := range val1 {
		if val1[i].Element != expectedTopElements[i] {
			t.Errorf("value at position %d should be %s, found %s", i, expectedTopElements[i], val1[i].Element)
		}
		if val1[i].Count != uint64(frequencyMap[val1[i].Element]) {
			t.Errorf("frequency doesn't match for %s. Instead found %d and %d", val1[i].Element, val1[i].Count, frequencyMap[val1[i].Element])
		}
	}
}

func TestTopKDifferentKs(t *testing.T) {
	errorRate := 0.001
	delta := 0.999

	frequencyMap := make(map[string]int)
	for i := range items {
		frequencyMap[items[i]]++
	}

	for _, k := range []uint{1, 3, 11, 20} {
		topk, _ := NewTopK(k, errorRate, delta)
		for i := range items {
			topk.InsertString(items[i], 1)
		}
		val := topk.Values()
		want := min(int(k), len(expectedTopElements))
		if len(val) != want {
			t.Fatalf("k=%d: topk should hold %d values, found %d", k, want, len(val))
		}
		for i := range val {
			if expectedTopElements[i] != val[i].Element {
				t.Errorf("k=%d: value at position %d should be %s, found %s", k, i, expectedTopElements[i], val[i].Element)
			}
			if val[i].Count != uint64(frequencyMap[val[i].Element]) {
				t.Errorf("k=%d: frequency doesn't match for %s. Instead found %d and %d", k, val[i].Element, val[i].Count, frequencyMap[val[i].Element])
			}
		}
	}
}

func TestTopKInvalid(t *testing.T) {
	if _, err := NewTopK(0, 0.001, 0.999); !errors.Is(err, kinepredict.ErrInvalidArgument) {
		t.Errorf("k of 0 should be rejected, got %v", err)
	}
	if _, err := NewTopK(3, 2, 0.999); !errors.Is(err, kinepredict.ErrInvalidArgument) {
		t.Errorf("error rate of 2 should be rejected, got %v", err)
	}
	topk, _ := NewTopK(3, 0.001, 0.999)
	if err := topk.InsertString("apple", 0); !errors.Is(err, kinepredict.ErrInvalidArgument) {
		t.Errorf("count of 0 should be rejected, got %v", err)
	}
	if len(topk.Values()) != 0 {
		t.Errorf("rejected insert shouldn't add values")
	}
}

func TestTopKClear(t *testing.T) {
	topk, _ := NewTopK(3, 0.001, 0.999)
	for i := range items {
		topk.InsertString(items[i], 1)
	}
	topk.Clear()
	if len(topk.Values()) != 0 {
		t.Errorf("cleared topk should be empty")
	}
	topk.InsertString("kiwi", 1)
	val := topk.Values()
	if len(val) != 1 || val[0].Element != "kiwi" || val[0].Count != 1 {
		t.Errorf("cleared topk should restart counting, found %v", val)
	}
}

func TestEquals(t *testing.T) {
	errorRate := 0.001
	delta := 0.999

	k, _ := NewTopK(10, errorRate, delta)
	for i := 0; i < 10; i++ {
		k.Insert([]byte(items[i]), 1)
	}

	l, _ := NewTopK(10, errorRate, delta)
	for i := 9; i >= 0; i-- {
		l.Insert([]byte(items[i]), 1)
	}

	if ok, err := l.Equals(k); !ok {
		t.Errorf("topk k and l should be equal, %v", err)
	}

	l.InsertString("melon", 1)
	if ok, _ := l.Equals(k); ok {
		t.Errorf("topk k and l shouldn't be equal")
	}

	m, _ := NewTopK(5, errorRate, delta)
	if ok, _ := m.Equals(k); ok {
		t.Errorf("topk with different k shouldn't be equal")
	}
}

func TestTopKEqualsNil(t *testing.T) {
	topk, _ := NewTopK(3, 0.001, 0.999)
	if ok, err := topk.Equals(nil); ok || err == nil {
		t.Errorf("topk shouldn't equal nil, got %v, %v", ok, err)
	}
}

func TestTopKExportImport(t *testing.T) {
	topk, _ := NewTopK(5, 0.001, 0.999)
	for i := range items {
		topk.InsertString(items[i], 1)
	}
	data, err := topk.Export()
	if err != nil {
		t.Fatalf("unexpected export error %v", err)
	}

	imported, _ := NewTopK(1, 0.1, 0.5)
	if err := imported.Import(data); err != nil {
		t.Fatalf("unexpected import error %v", err)
	}
	if ok, err := imported.Equals(topk); !ok {
		t.Errorf("imported topk should equal the exported one, %v", err)
	}
	if imported.K() != 5 {
		t.Errorf("imported k should be 5, found %d", imported.K())
	}

	// the imported candidates keep ranking new inserts
	for i := 0; i < 10; i++ {
		imported.InsertString("fig", 1)
	}
	val := imported.Values()
	if len(val) != 5 || val[0].Element != "fig" || val[0].Count < 10 {
		t.Errorf("fig should lead after import, found %v", val)
	}
}

func TestTopKImportInvalid(t *testing.T) {
	topk, _ := NewTopK(3, 0.001, 0.999)
	cases := map[string]string{
		"zero k":     `{"k":0,"e":0.1,"a":0.5,"s":{"r":1,"c":1,"s":0,"m":[[0]]},"h":[]}`,
		"too many":   `{"k":1,"e":0.1,"a":0.5,"s":{"r":1,"c":1,"s":2,"m":[[2]]},"h":[{"v":"a","f":1},{"v":"b","f":1}]}`,
		"bad sketch": `{"k":1,"e":0.1,"a":0.5,"s":{"r":2,"c":1,"s":0,"m":[[0]]},"h":[]}`,
	}
	for name, data := range cases {
		if err := topk.Import([]byte(data)); !errors.Is(err, kinepredict.ErrInvalidArgument) {
			t.Errorf("%s: import should fail with ErrInvalidArgument, got %v", name, err)
		}
	}
	if err := topk.Import([]byte("{")); err == nil {
		t.Errorf("malformed json should fail")
	}
	if topk.K() != 3 {
		t.Errorf("failed imports shouldn't change k, found %d", topk.K())
	}
}
