package log_test

import (
	"blockvault/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Log", func() {
	Describe("ParseLevel", func() {
		It("parses known levels", func() {
			Expect(log.ParseLevel("debug")).To(Equal(zapcore.DebugLevel))
			Expect(log.ParseLevel("WARN")).To(Equal(zapcore.WarnLevel))
		})

		It("defaults to info", func() {
			Expect(log.ParseLevel("chatty")).To(Equal(zapcore.InfoLevel))
			Expect(log.ParseLevel("")).To(Equal(zapcore.InfoLevel))
		})
	})

	Describe("NewZapLogger", func() {
		It("honours the level", func() {
			logger := log.NewZapLogger("blockvault", zapcore.WarnLevel)
			Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
			Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
		})
	})
})
