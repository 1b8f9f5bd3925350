package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/danielhkuo/cadastro-respostas/logging"
)

var _ = Describe("Logger", func() {
	ctx := context.Background()

	Describe("New", func() {
		It("should create logger with info level", func() {
			log := logging.New("info", "dev")
			Expect(log).NotTo(BeNil())
			Expect(log.Enabled(ctx, slog.LevelInfo)).To(BeTrue())
			Expect(log.Enabled(ctx, slog.LevelDebug)).To(BeFalse())
		})

		It("should respect debug level", func() {
			log := logging.New("debug", "dev")
			Expect(log.Enabled(ctx, slog.LevelDebug)).To(BeTrue())
		})

		It("should respect error level", func() {
			log := logging.New("error", "dev")
			Expect(log.Enabled(ctx, slog.LevelWarn)).To(BeFalse())
			Expect(log.Enabled(ctx, slog.LevelError)).To(BeTrue())
		})
	})

	Describe("NewWithWriter", func() {
		It("writes JSON tagged with the environment in prod", func() {
			var buf bytes.Buffer
			log := logging.NewWithWriter(&buf, "info", "prod")
			log.Info("E-mail já cadastrado.", slog.String("email", "a@x.com"))

			var entry map[string]any
			Expect(json.Unmarshal(buf.Bytes(), &entry)).To(Succeed())
			Expect(entry).To(HaveKeyWithValue("environment", "prod"))
			Expect(entry).To(HaveKeyWithValue("email", "a@x.com"))
			Expect(entry).To(HaveKeyWithValue("msg", "E-mail já cadastrado."))
		})

		It("writes text in dev", func() {
			var buf bytes.Buffer
			log := logging.NewWithWriter(&buf, "info", "dev")
			log.Info("listening", slog.Int("port", 3000))

			Expect(buf.String()).To(ContainSubstring("msg=listening"))
			Expect(buf.String()).To(ContainSubstring("port=3000"))
			Expect(buf.String()).To(ContainSubstring("environment=dev"))
		})
	})

	DescribeTable("ParseLevel",
		func(name string, expected slog.Level) {
			Expect(logging.ParseLevel(name)).To(Equal(expected))
		},
		Entry("debug", "debug", slog.LevelDebug),
		Entry("upper case", "WARN", slog.LevelWarn),
		Entry("error", "error", slog.LevelError),
		Entry("unknown defaults to info", "verbose", slog.LevelInfo),
	)
})
