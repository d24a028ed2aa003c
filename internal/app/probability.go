package app

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shiroemons/go-mtclone/internal/parser"
	"github.com/shiroemons/go-mtclone/pkg/rainbow"
)

// ProbUsage は rtprob の使い方です
const ProbUsage = "Usage: rtprob [OPTIONS] <chain num> <chain len> <table num> [keyspace]"

// RunProbability はレインボーテーブルの成功確率を計算して w に書き出します。
// 引数が3つに満たない場合は使い方だけを書き出し、何も計算しません。
func RunProbability(w io.Writer, args []string, report bool) error {
	if len(args) < 3 {
		fmt.Fprintln(w, ProbUsage)
		return nil
	}

	params, err := parser.ParseProbabilityArgs(args)
	if err != nil {
		return err
	}

	p := params.Probability()
	if report {
		writeReport(w, params)
	}
	fmt.Fprintf(w, "Success probability is: %f\n", p)
	return nil
}

// writeReport はパラメータと1テーブルあたりの確率を桁区切りで書き出します
func writeReport(w io.Writer, params rainbow.Params) {
	printer := message.NewPrinter(language.English)

	single := rainbow.SuccessProbability(params.ChainCount, params.ChainLen, 1, params.Keyspace)
	coverage := params.ChainCount * float64(params.ChainLen) / params.Keyspace

	printer.Fprintf(w, "chains per table: %d\n", int64(params.ChainCount))
	printer.Fprintf(w, "chain length:     %d\n", params.ChainLen)
	printer.Fprintf(w, "tables:           %d\n", params.TableCount)
	printer.Fprintf(w, "keyspace:         %d\n", int64(params.Keyspace))
	printer.Fprintf(w, "raw coverage:     %.4f\n", coverage)
	printer.Fprintf(w, "per table:        %.6f\n", single)
}
