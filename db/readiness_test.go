package db_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/danielhkuo/cadastro-respostas/db"
)

var _ = Describe("Readiness", func() {
	var logger *slog.Logger

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(GinkgoWriter, nil))
	})

	It("starts out not ready", func() {
		ready := db.NewReadiness()
		Expect(ready.Ready()).To(BeFalse())

		_, lastErr, checkedAt := ready.Status()
		Expect(lastErr).NotTo(HaveOccurred())
		Expect(checkedAt.IsZero()).To(BeTrue())
	})

	It("becomes ready after a successful probe", func() {
		conn, err := db.Open("sqlite://:memory:", db.PoolConfig{})
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		ready := db.NewReadiness()
		now, err := ready.Probe(context.Background(), conn)
		Expect(err).NotTo(HaveOccurred())
		Expect(now).NotTo(BeEmpty())
		Expect(ready.Ready()).To(BeTrue())
	})

	It("records an unreachable database without failing Open", func() {
		conn, err := db.Open("postgres://u:p@127.0.0.1:1/x?sslmode=disable&connect_timeout=1", db.PoolConfig{})
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		ready := db.NewReadiness()
		_, err = ready.Probe(context.Background(), conn)
		Expect(err).To(HaveOccurred())

		isReady, lastErr, checkedAt := ready.Status()
		Expect(isReady).To(BeFalse())
		Expect(lastErr).To(HaveOccurred())
		Expect(checkedAt.IsZero()).To(BeFalse())
	})

	Context("monitor", func() {
		It("tracks the database going down", func() {
			conn, err := db.Open("sqlite://:memory:", db.PoolConfig{})
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			ready := db.NewReadiness()
			done := make(chan struct{})
			go func() {
				defer close(done)
				ready.Monitor(ctx, conn, 10*time.Millisecond, logger, nil)
			}()

			Eventually(ready.Ready, time.Second, 10*time.Millisecond).Should(BeTrue())

			conn.Close()
			Eventually(ready.Ready, time.Second, 10*time.Millisecond).Should(BeFalse())

			cancel()
			Eventually(done, time.Second).Should(BeClosed())
		})

		It("creates the schema once a late database comes up", func() {
			dataDir := filepath.Join(GinkgoT().TempDir(), "data")
			conn, err := db.Open("sqlite://"+filepath.Join(dataDir, "app.db"), db.PoolConfig{})
			Expect(err).NotTo(HaveOccurred())
			defer conn.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			ready := db.NewReadiness()
			done := make(chan struct{})
			go func() {
				defer close(done)
				ready.Monitor(ctx, conn, 10*time.Millisecond, logger, db.CreateSchema)
			}()

			// sqlite cannot create the file while its directory is missing
			Eventually(func() error {
				_, lastErr, _ := ready.Status()
				return lastErr
			}, time.Second, 10*time.Millisecond).Should(HaveOccurred())
			Consistently(ready.Ready, 100*time.Millisecond, 10*time.Millisecond).Should(BeFalse())

			Expect(os.MkdirAll(dataDir, 0o755)).To(Succeed())
			Eventually(ready.Ready, 2*time.Second, 10*time.Millisecond).Should(BeTrue())

			var n int
			Expect(conn.QueryRow("SELECT COUNT(*) FROM cadastro").Scan(&n)).To(Succeed())
			Expect(conn.QueryRow("SELECT COUNT(*) FROM respostas").Scan(&n)).To(Succeed())

			cancel()
			Eventually(done, time.Second).Should(BeClosed())
		})

		It("stays down and retries until initialization succeeds", func() {
			conn, err := db.Open("sqlite://:memory:", db.PoolConfig{})
			Expect(err).NotTo(HaveOccurred())
			defer conn.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var calls atomic.Int32
			initFn := func(ctx context.Context, conn *db.Conn) error {
				if calls.Add(1) < 3 {
					return errors.New("not yet")
				}
				return nil
			}

			ready := db.NewReadiness()
			done := make(chan struct{})
			go func() {
				defer close(done)
				ready.Monitor(ctx, conn, 50*time.Millisecond, logger, initFn)
			}()

			Eventually(func() error {
				_, lastErr, _ := ready.Status()
				return lastErr
			}, time.Second, 5*time.Millisecond).Should(MatchError(ContainSubstring("not yet")))

			Eventually(ready.Ready, time.Second, 10*time.Millisecond).Should(BeTrue())
			Expect(calls.Load()).To(BeEquivalentTo(3))
			Consistently(calls.Load, 200*time.Millisecond, 10*time.Millisecond).Should(BeEquivalentTo(3))

			cancel()
			Eventually(done, time.Second).Should(BeClosed())
		})
	})
})
