package ai

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// shortReviewRunes is the trimmed length below which the short prompt is used.
const shortReviewRunes = 20

const keyPointsSystemPrompt = "You are an expert product review analyst. Your task is to extract and analyze key points " +
	"from product reviews in a structured and informative way. Do NOT simply repeat the words from the review. " +
	"Instead, provide deeper analysis and insights about the aspects mentioned. " +
	"Format each point as: • [Aspect]: [Detailed analysis/insight]. " +
	"Always respond in the same language as the review (Indonesian or English). " +
	"Provide 2-4 key points with meaningful analysis."

const shortReviewPrompt = `Review produk: "%s"

Analisis review di atas dan ekstrak poin penting dengan cara yang informatif dan terstruktur. Jangan hanya mengulang kata-kata dari review, tapi berikan analisis yang lebih mendalam tentang aspek yang disebutkan.

Format output:
• [Aspek]: [Analisis/Insight yang lebih detail]

Contoh:
- Review: "jelek oi"
- Output: • [Kualitas]: Produk dinilai buruk oleh pengguna, menunjukkan ketidakpuasan terhadap kualitas produk

Jawab dalam bahasa yang sama dengan review (Indonesia atau Inggris).`

const longReviewPrompt = `Review produk: "%s"

Analisis review di atas dan ekstrak poin penting dengan cara yang informatif dan terstruktur. Jangan hanya mengulang kata-kata dari review secara literal, tapi berikan analisis yang lebih mendalam.

Untuk setiap poin penting yang ditemukan:
1. Identifikasi aspek yang dibahas (kualitas, rasa, bau, harga, pengiriman, dll)
2. Berikan analisis atau insight tentang aspek tersebut
3. Jika ada masalah spesifik, jelaskan dampaknya

Format output (maksimal 3-5 poin):
• [Aspek]: [Analisis detail tentang aspek tersebut]

Contoh:
- Review: "baunya aneh, tidak enak dimulut ketika dimakan"
- Output:
• [Kualitas Rasa & Bau]: Produk memiliki bau yang tidak normal dan rasa yang tidak enak saat dikonsumsi, mengindikasikan masalah kualitas atau kesegaran produk
• [Pengalaman Pengguna]: Pengalaman konsumsi produk negatif, kemungkinan mempengaruhi kepuasan pelanggan

Jawab dalam bahasa yang sama dengan review (Indonesia atau Inggris). Jangan hanya mengulang kata-kata dari review, tapi berikan analisis yang lebih mendalam.`

const singleTurnPrompt = `Analisis review produk berikut dan ekstrak poin penting dengan cara yang informatif dan terstruktur. Jangan hanya mengulang kata-kata dari review, tapi berikan analisis yang lebih mendalam tentang aspek yang disebutkan.

Review: %s

Untuk setiap poin penting:
1. Identifikasi aspek yang dibahas (kualitas, rasa, bau, harga, pengiriman, dll)
2. Berikan analisis atau insight tentang aspek tersebut
3. Jika ada masalah spesifik, jelaskan dampaknya

Format output (maksimal 3-5 poin):
• [Aspek]: [Analisis detail tentang aspek tersebut]

Contoh format:
• [KUALITAS BAU & RASA]: Produk memiliki bau yang tidak normal dan rasa yang tidak enak saat dikonsumsi, mengindikasikan masalah kualitas atau kesegaran produk
• [PENGALAMAN PENGGUNA]: Pengalaman konsumsi produk negatif, kemungkinan mempengaruhi kepuasan pelanggan

Poin Penting:`

const summarizationPrefix = "Ekstrak poin penting dari review ini: "

// KeyPointsPrompt builds the user turn for chat-style providers.
func KeyPointsPrompt(text string) string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < shortReviewRunes {
		return fmt.Sprintf(shortReviewPrompt, text)
	}
	return fmt.Sprintf(longReviewPrompt, text)
}

// SingleTurnPrompt builds the prompt for providers without a system role.
func SingleTurnPrompt(text string) string {
	return fmt.Sprintf(singleTurnPrompt, text)
}
