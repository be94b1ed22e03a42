package main

import (
	"fmt"
	"log"

	"github.com/libsv/go-bk/bec"

	"github.com/josephnicholas/VerusCoin/keyio"
)

func main() {
	// Generate a new private key
	privateKey, err := bec.NewPrivateKey(bec.S256())
	if err != nil {
		log.Fatal("Failed to generate private key:", err)
	}

	fmt.Printf("Private key:     %x\n", privateKey.Serialise())

	pubKeyBytes := privateKey.PubKey().SerialiseCompressed()
	fmt.Printf("Public key:      %x\n", pubKeyBytes)

	pubKeyHash := keyio.Hash160(pubKeyBytes)
	fmt.Printf("Public key hash: %x\n", pubKeyHash.Bytes())

	address := keyio.EncodeDestination(keyio.Destination{
		Type: keyio.DestPubKeyHash,
		Data: pubKeyHash.Bytes(),
	})
	fmt.Println("Address:        ", address)
}
