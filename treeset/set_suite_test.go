package treeset_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTreeset(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Treeset Suite")
}
