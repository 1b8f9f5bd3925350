package db_test

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/danielhkuo/cadastro-respostas/db"
)

var _ = Describe("Conn", func() {
	var (
		conn *db.Conn
		ctx  context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		conn, err = db.Open("sqlite://:memory:", db.PoolConfig{MaxOpenConns: 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.CreateSchema(ctx, conn)).To(Succeed())
	})

	AfterEach(func() {
		conn.Close()
	})

	It("reports the driver", func() {
		Expect(conn.Driver()).To(Equal(db.DriverSQLite))
	})

	It("pins in-memory databases to one connection", func() {
		Expect(conn.Stats().MaxOpenConnections).To(Equal(1))
	})

	It("answers the diagnostic query", func() {
		now, err := conn.Now(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(now).NotTo(BeEmpty())
	})

	It("creates the schema idempotently", func() {
		Expect(db.CreateSchema(ctx, conn)).To(Succeed())

		_, err := conn.ExecContext(ctx, conn.Rebind("INSERT INTO cadastro (email) VALUES (?)"), "a@x.com")
		Expect(err).NotTo(HaveOccurred())
	})

	It("cascades registration deletes to answers", func() {
		var userID int64
		err := conn.QueryRowContext(ctx,
			conn.Rebind("INSERT INTO cadastro (email) VALUES (?) RETURNING id"), "a@x.com",
		).Scan(&userID)
		Expect(err).NotTo(HaveOccurred())

		_, err = conn.ExecContext(ctx,
			conn.Rebind("INSERT INTO respostas (user_id, pergunta_id, resposta_chave) VALUES (?, ?, ?)"),
			userID, 1, "A",
		)
		Expect(err).NotTo(HaveOccurred())

		_, err = conn.ExecContext(ctx, conn.Rebind("DELETE FROM cadastro WHERE id = ?"), userID)
		Expect(err).NotTo(HaveOccurred())

		var count int
		Expect(conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM respostas").Scan(&count)).To(Succeed())
		Expect(count).To(Equal(0))
	})

	It("enforces foreign keys", func() {
		_, err := conn.ExecContext(ctx,
			conn.Rebind("INSERT INTO respostas (user_id, pergunta_id, resposta_chave) VALUES (?, ?, ?)"),
			999, 1, "A",
		)
		Expect(err).To(HaveOccurred())
	})

	Describe("Rebind", func() {
		It("leaves sqlite placeholders alone", func() {
			q := "SELECT * FROM respostas WHERE user_id = ? AND pergunta_id = ?"
			Expect(conn.Rebind(q)).To(Equal(q))
		})

		It("numbers placeholders for postgres", func() {
			pg, err := db.Open("postgres://u:p@127.0.0.1:1/x?sslmode=disable", db.PoolConfig{})
			Expect(err).NotTo(HaveOccurred())
			defer pg.Close()

			Expect(pg.Rebind("INSERT INTO respostas (user_id, pergunta_id, resposta_chave) VALUES (?, ?, ?)")).
				To(Equal("INSERT INTO respostas (user_id, pergunta_id, resposta_chave) VALUES ($1, $2, $3)"))
		})
	})

	Describe("ErrorCode", func() {
		It("extracts the sqlite result code", func() {
			insert := conn.Rebind("INSERT INTO cadastro (email) VALUES (?)")
			_, err := conn.ExecContext(ctx, insert, "dup@x.com")
			Expect(err).NotTo(HaveOccurred())

			_, err = conn.ExecContext(ctx, insert, "dup@x.com")
			Expect(err).To(HaveOccurred())
			Expect(db.ErrorCode(err)).NotTo(BeEmpty())
		})

		It("extracts the postgres SQLSTATE through wrapping", func() {
			err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
			Expect(db.ErrorCode(err)).To(Equal("23505"))
		})

		It("returns empty for other errors", func() {
			Expect(db.ErrorCode(fmt.Errorf("boom"))).To(BeEmpty())
		})
	})
})
