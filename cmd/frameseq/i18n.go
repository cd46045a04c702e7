// Package main provides localization for the frameseq CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"List and plan frame files in natural order": "フレームファイルを自然順で一覧・計画します",
		"YAML configuration file":                    "YAML設定ファイル",
		"Log level (debug, info, warn, error)":       "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                    "全てのログ出力を抑制",

		// List command
		"List the regular files of a directory in natural order": "ディレクトリ内の通常ファイルを自然順で一覧表示",
		"Only list files with this extension (repeatable)":       "この拡張子のファイルのみ一覧（複数指定可）",
		"Manifest format (text, tsv, yaml, json)":                "マニフェスト形式（text, tsv, yaml, json）",
		"Write the manifest to this file instead of stdout":      "マニフェストを標準出力ではなくこのファイルに書き込む",

		// Plan command
		"Map every file of a directory to an output file":      "ディレクトリ内の各ファイルを出力ファイルに対応付け",
		"Output directory":                                     "出力ディレクトリ",
		"Output extension (default: keep the input extension)": "出力の拡張子（デフォルト: 入力の拡張子を維持）",
		"Name outputs by index instead of stem, e.g. %08d":     "ファイル名の代わりに連番で出力名を付ける（例: %08d）",

		// Version command
		"Show version information": "バージョン情報を表示",
		"frameseq version %s":      "frameseq バージョン %s",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Error messages
		"An output directory is required (--to or output_dir)": "出力ディレクトリが必要です（--to または output_dir）",
		"Exactly one directory argument is required":           "ディレクトリ引数を1つだけ指定してください",
	})
}
