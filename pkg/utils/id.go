package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRequestID gera o identificador curto usado nos logs de requisição
func GenerateRequestID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
