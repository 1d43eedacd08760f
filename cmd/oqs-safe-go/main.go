// Command oqs-safe-go prints the wrapper and provider versions and the
// algorithms the selected provider offers. Set OQS_SAFE_BACKEND to pick a
// provider.
package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs"
	"github.com/hsiuhsiu/oqs-safe-go/pkg/oqs/catalog"
)

func main() {
	log.Printf("oqs-safe-go version: %s", oqs.WrapperVersion())
	log.Printf("upstream: %s (%s @ %s)", oqs.UpstreamVersion(), oqs.UpstreamDir, oqs.UpstreamSHA)
	log.Printf("providers compiled in: %v, using %s", oqs.Backends(), oqs.Default().Backend())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tALGORITHM\tLEVEL\tPK\tSK\tCT/SIG\tSS\tCONTEXT")
	for _, id := range catalog.Enabled(catalog.FamilyKEM) {
		d, err := catalog.DescribeKEM(id)
		if err != nil {
			log.Fatalf("describe %s: %v", id, err)
		}
		fmt.Fprintf(w, "kem\t%s\t%d\t%d\t%d\t%d\t%d\t-\n",
			d.Name, d.ClaimedNISTLevel, d.PublicKeyLen, d.SecretKeyLen, d.CiphertextLen, d.SharedSecretLen)
	}
	for _, id := range catalog.Enabled(catalog.FamilySig) {
		d, err := catalog.DescribeSig(id)
		if err != nil {
			log.Fatalf("describe %s: %v", id, err)
		}
		fmt.Fprintf(w, "sig\t%s\t%d\t%d\t%d\t<=%d\t-\t%t\n",
			d.Name, d.ClaimedNISTLevel, d.PublicKeyLen, d.SecretKeyLen, d.MaxSignatureLen, d.SupportsContext)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("write table: %v", err)
	}
}
