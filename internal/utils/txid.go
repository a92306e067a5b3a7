package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const txnAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTransactionID builds a reference like "TXN1712345678901AB3F9K2LM":
// prefix + unix millis + 9 random base36 chars. Uniqueness is backed by the
// unique column in the database; this only needs to be collision-resistant.
func NewTransactionID(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	for i := 0; i < 9; i++ {
		b.WriteByte(txnAlphabet[rand.Intn(len(txnAlphabet))])
	}
	return b.String()
}
