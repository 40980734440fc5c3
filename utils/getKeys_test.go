package utils

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {
	keys := GetKeys(map[string]int{"ddr-b": 2, "ddr-a": 1, "ddr-c": 3})
	biff.AssertEqual(keys, []string{"ddr-a", "ddr-b", "ddr-c"})

	biff.AssertEqual(len(GetKeys(map[uint64]bool{})), 0)
}
