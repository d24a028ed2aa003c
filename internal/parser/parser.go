// Package parser は状態ファイルや検索ツールの出力などの解析を行います
package parser

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shiroemons/go-mtclone/internal/errors"
	"github.com/shiroemons/go-mtclone/pkg/mtrand"
	"github.com/shiroemons/go-mtclone/pkg/rainbow"
)

// maxLineSize は 1 行に全ワードを並べた観測ファイルも読めるようにするための上限です
const maxLineSize = 16 * 1024 * 1024

var (
	seedFoundPattern    = regexp.MustCompile(`^\[\+\] Seed found: (\d+)`)
	seedNotFoundPattern = regexp.MustCompile(`^\[-\] Seed not found`)
	searchErrorPattern  = regexp.MustCompile(`^\[-\] An error occ?urr?ed`)
)

// ParseWord は 10 進数または 0x 付き 16 進数の 32 ビット値を解析します。
// 先頭が 0 の 10 進数を 8 進数として扱わないよう、基数は明示的に決めます。
func ParseWord(token string) (uint32, error) {
	token = strings.TrimSpace(token)
	base := 10
	digits := token
	if strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X") {
		base = 16
		digits = token[2:]
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWord, token)
	}
	return uint32(n), nil
}

// ParseSeed はシードを解析します
func ParseSeed(s string) (uint32, error) {
	seed, err := ParseWord(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return seed, nil
}

// ParseWords は空白またはカンマ区切りの値の並びを解析します。# 以降はコメントです。
func ParseWords(text string) ([]uint32, error) {
	var words []uint32

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, f := range fields {
			w, err := ParseWord(f)
			if err != nil {
				return nil, fmt.Errorf("%d行目: %w", lineNo, err)
			}
			words = append(words, w)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanError, err)
	}

	return words, nil
}

// ParseStateVector は 624 ワードちょうどの状態ベクトルを解析します
func ParseStateVector(text string) ([]uint32, error) {
	words, err := ParseWords(text)
	if err != nil {
		return nil, err
	}
	if len(words) != mtrand.StateSize {
		return nil, fmt.Errorf("%w: %d ワード", ErrWordCount, len(words))
	}
	return words, nil
}

// ParseDigest は 16 進数のハッシュ値を解析します
func ParseDigest(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, ErrInvalidDigest
	}
	digest, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}
	return digest, nil
}

// ParseSearchOutput は外部の検索ツールの出力からシードを取り出します
func ParseSearchOutput(output string) (uint32, bool, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := seedFoundPattern.FindStringSubmatch(line); m != nil {
			seed, err := strconv.ParseUint(m[1], 10, 32)
			if err != nil {
				return 0, false, fmt.Errorf("%w: %q", ErrInvalidWord, m[1])
			}
			return uint32(seed), true, nil
		}
		if seedNotFoundPattern.MatchString(line) {
			return 0, false, nil
		}
		if searchErrorPattern.MatchString(line) {
			return 0, false, errors.ErrSearchFailed
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrScanError, err)
	}

	return 0, false, ErrUnknownSearchOutput
}

// ParseProbabilityArgs は <chain num> <chain len> <table num> [keyspace] を解析します
func ParseProbabilityArgs(args []string) (rainbow.Params, error) {
	if len(args) < 3 || len(args) > 4 {
		return rainbow.Params{}, fmt.Errorf("%w: %d 個", ErrArgumentCount, len(args))
	}

	chainCount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return rainbow.Params{}, fmt.Errorf("%w: chain num: %w", ErrInvalidNumber, err)
	}
	chainLen, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return rainbow.Params{}, fmt.Errorf("%w: chain len: %w", ErrInvalidNumber, err)
	}
	tables, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return rainbow.Params{}, fmt.Errorf("%w: table num: %w", ErrInvalidNumber, err)
	}

	keyspace := rainbow.DefaultKeyspace
	if len(args) == 4 {
		keyspace, err = strconv.ParseFloat(args[3], 64)
		if err != nil {
			return rainbow.Params{}, fmt.Errorf("%w: keyspace: %w", ErrInvalidNumber, err)
		}
	}

	return rainbow.Params{
		ChainCount: chainCount,
		ChainLen:   uint32(chainLen),
		TableCount: uint32(tables),
		Keyspace:   keyspace,
	}, nil
}
