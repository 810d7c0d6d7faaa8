package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Tamanho dos tokens de link de investidor: vão em URL pública, então
// precisam ser impossíveis de enumerar.
const tokenLength = 21

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

func GenerateToken() (string, error) {
	return gonanoid.Generate(characters, tokenLength)
}
