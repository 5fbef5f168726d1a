package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Decoder (debug)
		"Decoded %dx%d image: %d source components, %d returned": "%dx%d の画像をデコードしました: ソース %d 成分, 出力 %d 成分",
		"Decoded frame %d: %dx%d, delay %d ms":                    "フレーム %d をデコードしました: %dx%d, 遅延 %d ms",
		"Animation ended after %d frames":                         "%d フレームでアニメーションが終了しました",
		"Stream error: %s":                                        "ストリームエラー: %s",

		// Stages (debug)
		"Opening %s":                       "%s を開いています",
		"Decoding %s as animation":         "%s をアニメーションとしてデコード中",
		"Decoding %s as still image":       "%s を静止画としてデコード中",
		"Wrote %d outputs for %s":          "%s の出力を %d 件書き込みました",
		"Rendering contact sheet for %s":   "%s のコンタクトシートを作成中",

		// Orchestration (info)
		"Decoding %d files with %d workers": "%d ファイルを %d ワーカーでデコード中",
		"Decoded %s: %dx%d, %d frames":      "%s をデコードしました: %dx%d, %d フレーム",
		"Batch completed: %d succeeded, %d failed": "バッチ完了: 成功 %d, 失敗 %d",
		"Report saved to %s":                "レポートを %s に保存しました",
		"Interrupted, shutting down...":     "中断されました。シャットダウン中...",

		// Warnings and errors
		"Failed to decode %s: %s":  "%s のデコードに失敗しました: %s",
		"Failed to export %s: %s":  "%s の書き出しに失敗しました: %s",
		"Failed to load config: %s": "設定の読み込みに失敗しました: %s",
	})
}
