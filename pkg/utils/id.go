package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const shortIDLength = 10

// GenerateID gera um identificador curto alfanumérico
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, shortIDLength)
}
