package pdf

import "malacara/go_backend/internal/domain/quote"

type Generator interface {
	Generate(doc quote.Document) ([]byte, error)
}
