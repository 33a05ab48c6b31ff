package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 20
)

// GenerateID gera IDs no mesmo formato dos documentos importados da base antiga
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
