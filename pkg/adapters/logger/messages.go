package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":               "パイプラインを開始します",
		"Listing %s":                      "%s を一覧しています",
		"Found %d frames in %s":           "%[2]s に %[1]d 個のフレームが見つかりました",
		"Planning %d jobs into %s":        "%[2]s への %[1]d 件のジョブを計画しています",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Manifest saved to %s":            "マニフェストを %s に保存しました",

		// Component level messages (debug)
		"Skipping %s (%s)":                     "%s をスキップします (%s)",
		"Filtered %d of %d files by extension": "拡張子により %[2]d 件中 %[1]d 件を除外しました",
		"Planned %s -> %s":                     "%s -> %s を計画しました",
		"Resolved %s to %s":                    "%s を %s に解決しました",

		// Warnings
		"Executable directory unavailable, using %s as given: %v": "実行ファイルのディレクトリを取得できません。%s をそのまま使用します: %v",

		// Errors
		"opendir failed %s":            "ディレクトリを開けませんでした %s",
		"Failed to list directory: %s": "ディレクトリの一覧に失敗しました: %s",
		"Failed to plan outputs: %s":   "出力の計画に失敗しました: %s",
	})
}
