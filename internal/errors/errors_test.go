package errors

import (
	"errors"
	"testing"
)

func TestSearchError(t *testing.T) {
	base := errors.New("exit status 1")

	tests := []struct {
		name string
		err  *SearchError
		want string
	}{
		{"対象あり", NewSearchError("search", "wikihash.1.2.0.rt", base), "search wikihash.1.2.0.rt: exit status 1"},
		{"対象なし", NewSearchError("crack", "", base), "crack: exit status 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q; want %q", got, tt.want)
			}
			if !errors.Is(tt.err, base) {
				t.Error("Unwrap should expose the original error")
			}
		})
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("state.txt", ErrFileNotFound)
	if got := err.Error(); got != "state.txtの解析エラー: ファイルが見つかりません" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrFileNotFound) {
		t.Error("errors.Is should match the wrapped error")
	}
}
