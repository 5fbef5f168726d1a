package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages and report labels.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Decoding":    "デコード",
		"Output":      "出力先",
		"Performance": "性能",
		"Logging":     "ログ",

		// Commands
		"Decode images and GIF animations from streams":     "ストリームから画像とGIFアニメーションをデコード",
		"Decode still images":                               "静止画をデコード",
		"Decode every frame of GIF animations":              "GIFアニメーションの全フレームをデコード",
		"Decode many files concurrently and write a report": "複数ファイルを並行してデコードし、レポートを出力",

		// Flags
		"YAML configuration file":                                     "YAML設定ファイル",
		"Log level (debug, info, warn, error)":                        "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                     "すべてのログ出力を抑制",
		"Channels per pixel (default, grey, grey-alpha, rgb, rgba)":   "1ピクセルあたりのチャンネル（default, grey, grey-alpha, rgb, rgba）",
		"Reject images wider or taller than this":                     "この値より幅または高さが大きい画像を拒否",
		"Directory for decoded PNG files":                             "デコードしたPNGファイルの出力ディレクトリ",
		"Also write zstd-compressed raw pixel dumps":                  "zstd圧縮した生ピクセルダンプも出力",
		"Stop after this many frames (0 = all)":                       "このフレーム数で停止（0 = すべて）",
		"Render a contact sheet per animation":                        "アニメーションごとにコンタクトシートを作成",
		"Animation handling (auto, always, never)":                    "アニメーションの扱い（auto, always, never）",
		"Number of concurrent decoders (0 = number of CPUs)":          "並行デコーダー数（0 = CPU数）",
		"Write a Markdown report to this path":                        "Markdownレポートの出力先",

		// Results
		"At least one input file is required":                 "入力ファイルを1つ以上指定してください",
		"%d of %d files failed":                               "%[2]d件中%[1]d件が失敗しました",
		"%s: %dx%d, %d source components, %d returned":        "%s: %dx%d、元のチャンネル数 %d、出力 %d",
		"%s: %dx%d, %d frames, %d ms":                         "%s: %dx%d、%dフレーム、%d ms",
		"  frame %d: delay %d ms":                             "  フレーム %d: 遅延 %d ms",
		"%s: %dx%d, %d frames":                                "%s: %dx%d、%dフレーム",
		"%s: failed: %s":                                      "%s: 失敗: %s",

		// Report
		"Decode Summary":           "デコード結果",
		"Generated":                "作成日時",
		"Settings":                 "設定",
		"Item":                     "項目",
		"Value":                    "値",
		"Components":               "チャンネル",
		"Animation":                "アニメーション",
		"Max Frames":               "最大フレーム数",
		"All":                      "すべて",
		"Workers":                  "ワーカー数",
		"Contact Sheets":           "コンタクトシート",
		"Output Directory":         "出力ディレクトリ",
		"Files":                    "ファイル",
		"No files were processed.": "処理したファイルはありません。",
		"File":                     "ファイル",
		"Size":                     "サイズ",
		"Frames":                   "フレーム数",
		"Duration":                 "再生時間",
		"Result":                   "結果",
		"Failed":                   "失敗",
		"OK":                       "成功",
		"Totals":                   "合計",
		"Succeeded":                "成功",
		"Decoded Pixels":           "デコード済みピクセル",
		"Yes":                      "はい",
		"No":                       "いいえ",
	})
}
