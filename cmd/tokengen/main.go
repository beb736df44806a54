package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/zeinix-zz/jwtkit"
)

func main() {
	var (
		secret = flag.String("secret", "", "Signing secret (minimum 32 bytes)")
		pid    = flag.String("pid", "user123", "Subject identifier")
		alg    = flag.String("alg", "HS256", "Signing algorithm (HS256, HS384, HS512)")
		ttl    = flag.Duration("ttl", time.Hour, "Token validity duration")
		extra  = flag.String("claims", "", "Extra claims as a JSON object")
	)

	flag.Parse()

	if len(*secret) < 32 {
		log.Fatal("secret must be at least 32 bytes")
	}

	var extraClaims map[string]any
	if *extra != "" {
		if err := json.Unmarshal([]byte(*extra), &extraClaims); err != nil {
			log.Fatalf("invalid -claims JSON: %v", err)
		}
	}

	svc, err := jwtkit.NewFromString(*secret, jwtkit.WithAlgorithm(jwtkit.Algorithm(*alg)))
	if err != nil {
		log.Fatal(err)
	}

	exp := time.Now().Add(*ttl)
	token, err := svc.IssueFor(*pid, exp, extraClaims)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	fmt.Println("\n=== JWT Token Generated ===")
	fmt.Printf("\nToken: %s\n\n", token)
	fmt.Println("Claims:")
	fmt.Printf("  Subject:   %s\n", *pid)
	fmt.Printf("  Algorithm: %s\n", *alg)
	fmt.Printf("  Expires:   %s\n", exp.Format(time.RFC3339))
}
