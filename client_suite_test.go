package riemann_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRiemann(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Riemann Client Suite")
}
