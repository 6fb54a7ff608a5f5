package utils

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateDeterministicID создает ID из переданного генератора.
// Нужен для воспроизводимых миров: один сид - одни и те же ID сущностей.
func GenerateDeterministicID(rng *mrand.Rand, prefix string) string {
	b := make([]byte, 8)
	rng.Read(b)
	return prefix + hex.EncodeToString(b)
}
