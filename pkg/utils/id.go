package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "abcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength = 12
)

// GenerateID gera o identificador de uma execução do pipeline
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}
