package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/libsv/go-bt/v2"

	"github.com/josephnicholas/VerusCoin/model"
	"github.com/josephnicholas/VerusCoin/script"
)

// txdecode prints the JSON projection of a raw transaction or output script.
// The hex is taken from the first argument, or from stdin when absent.
func main() {
	asScript := flag.Bool("script", false, "treat the input as an output script instead of a transaction")
	flag.Parse()

	input := flag.Arg(0)
	if input == "" {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 1024*1024), 64*1024*1024)

		if scanner.Scan() {
			input = scanner.Text()
		}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		log.Fatal("no input")
	}

	var v interface{}

	if *asScript {
		s, err := script.NewFromHex(input)
		if err != nil {
			log.Fatal("failed to parse script: ", err)
		}

		v = model.ScriptPubKeyToJSON(s, true, true)
	} else {
		tx, err := bt.NewTxFromString(input)
		if err != nil {
			log.Fatal("failed to parse transaction: ", err)
		}

		v = model.TxToJSON(tx, nil)
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal("failed to marshal JSON: ", err)
	}

	fmt.Println(string(out))
}
