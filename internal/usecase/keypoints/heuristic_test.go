package keypoints

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", MsgNoText},
		{"whitespace", "  \n\t ", MsgNoText},
		{"single char", "a", "• a"},
		{"short negative", "jelek", "[KUALITAS]: Produk dinilai buruk oleh pengguna, menunjukkan ketidakpuasan terhadap kualitas produk"},
		{"short smell", "baunya aneh", "[KUALITAS BAU & RASA]: Produk memiliki bau yang tidak normal, mengindikasikan masalah kualitas atau kesegaran produk"},
		{"short price", "harganya mahal", "[HARGA]: Harga produk dinilai terlalu mahal atau tidak sebanding dengan kualitas"},
		{"short positive and delivery", "mantap. kirim cepat. pengiriman ok", "[KUALITAS]: Produk dinilai baik oleh pengguna\n[LAYANAN]: Pengiriman cepat dan memuaskan"},
		{"short informational", "oke lah ya", "[INFORMASI]: oke lah ya"},
		{"short odd", "agak weird ya", "[KUALITAS]: Produk memiliki karakteristik yang tidak normal atau tidak memuaskan"},
		{"quality negative", "Kualitas bahan jelek sekali, cepat rusak.", "[KUALITAS]: Masalah kualitas produk: Kualitas bahan jelek sekali, cepat rusak."},
		{"quality positive", "Kualitas jahitannya bagus dan rapi", "[KUALITAS]: Kualitas produk dinilai baik: Kualitas jahitannya bagus dan rapi"},
		{"smell", "Produk ini baunya aneh sekali", "[KUALITAS BAU & RASA]: Masalah bau dan rasa: Produk memiliki bau yang tidak normal dan/atau rasa yang tidak enak, mengindikasikan masalah kualitas atau kesegaran produk"},
		{"taste", "Rasanya tidak enak dan bikin kecewa", "[KUALITAS RASA]: Masalah rasa: Produk memiliki rasa yang tidak memuaskan, mempengaruhi pengalaman konsumsi"},
		{"service beats price", "harga murah, pengiriman cepat", "[LAYANAN]: Aspek layanan: harga murah, pengiriman cepat"},
		{"generic positive", "Barang ini bagus sekali", "[KUALITAS]: Umpan balik positif: Barang ini bagus sekali"},
		{"generic negative", "Barangnya jelek, menyesal beli", "[KUALITAS]: Kualitas produk dinilai buruk oleh pengguna, menunjukkan ketidakpuasan terhadap produk"},
		{"last resort", "Lorem ipsum dolor sit amet yo. Ipsum lorem dolor sit amet yo. Hi", "[INFORMASI]: Lorem ipsum dolor sit amet yo\n[INFORMASI]: Ipsum lorem dolor sit amet yo"},
		{"nothing extractable", strings.Repeat("Hai semua. ", 6), MsgNoKeyPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Extract(tt.in), tt.want)
		})
	}
}

func TestExtract_Deduplicates(t *testing.T) {
	out := Extract("Barang ini bagus sekali! Barang ini bagus sekali")
	assert.Equal(t, out, "[KUALITAS]: Umpan balik positif: Barang ini bagus sekali")
}

func TestExtract_CapsAtFive(t *testing.T) {
	var parts []string
	for i := 1; i <= 7; i++ {
		parts = append(parts, fmt.Sprintf("Produk nomor %d sangat bagus sekali", i))
	}
	out := Extract(strings.Join(parts, ". "))
	lines := strings.Split(out, "\n")
	assert.Equal(t, len(lines), 5)
	assert.Equal(t, lines[0], "[KUALITAS]: Umpan balik positif: Produk nomor 1 sangat bagus sekali")
}

func TestExtract_LongTextWithoutKeywords(t *testing.T) {
	var parts []string
	for i := 0; i < 10; i++ {
		parts = append(parts, fmt.Sprintf("Lorem ipsum dolor sit amet %d consectetur adipiscing elit", i))
	}
	in := strings.Join(parts, ". ")
	if len(in) < 500 {
		t.Fatalf("fixture too short: %d", len(in))
	}

	out := Extract(in)
	lines := strings.Split(out, "\n")
	assert.Equal(t, len(lines), 5)
	for _, l := range lines {
		assert.Equal(t, strings.HasPrefix(l, "• Lorem ipsum"), true)
	}
}

func TestExtract_BackfillsUncategorizedSentences(t *testing.T) {
	in := "Barang ini bagus sekali. Saya pesan tanggal 12 dan tiba keesokan harinya"
	out := Extract(in)
	assert.Equal(t, out, "[KUALITAS]: Umpan balik positif: Barang ini bagus sekali\n• Saya pesan tanggal 12 dan tiba keesokan harinya")
}

func TestExtract_DeterministicAndTagged(t *testing.T) {
	inputs := []string{
		"a", "jelek", "woi apalah ini", "bagus tapi jelek",
		"Kualitas bahan jelek sekali, cepat rusak. Pengiriman lambat! Harga mahal?",
		"Rasanya enak, aromanya wangi. Desain warnanya menarik sekali dan fungsinya lengkap",
		strings.Repeat("Hai semua. ", 6),
	}
	allowed := []string{
		TagQuality + ": ", TagSmellTaste + ": ", TagTaste + ": ", TagService + ": ",
		TagPrice + ": ", TagFeature + ": ", TagInformation + ": ", bullet,
	}

	for _, in := range inputs {
		first := Extract(in)
		assert.Equal(t, Extract(in), first)
		assert.NotEqual(t, first, "")
		if first == MsgNoKeyPoints {
			continue
		}
		for _, line := range strings.Split(first, "\n") {
			ok := false
			for _, p := range allowed {
				if strings.HasPrefix(line, p) {
					ok = true
					break
				}
			}
			if !ok {
				t.Fatalf("line %q of %q has no known tag", line, in)
			}
		}
	}
}
