package embedding

import (
	"context"
	"math"
)

// TextEmbedder converts texts into fixed-length vector representations. The
// caller is agnostic to model identity and dimension; vectors from the same
// embedder instance are comparable with Cosine.
type TextEmbedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// Cosine returns the cosine similarity of two vectors. Mismatched lengths or
// a zero vector yield 0, which ranks below any real match.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
