package db_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/danielhkuo/cadastro-respostas/db"
)

var _ = Describe("ParseDSN", func() {
	DescribeTable("driver selection",
		func(url string, driver db.Driver, dsn string) {
			gotDriver, gotDSN := db.ParseDSN(url)
			Expect(gotDriver).To(Equal(driver))
			Expect(gotDSN).To(Equal(dsn))
		},
		Entry("postgres URL", "postgres://u:p@localhost:5432/pesquisa?sslmode=disable",
			db.DriverPostgres, "postgres://u:p@localhost:5432/pesquisa?sslmode=disable"),
		Entry("postgresql URL", "postgresql://localhost/pesquisa",
			db.DriverPostgres, "postgresql://localhost/pesquisa"),
		Entry("libpq key/value", "host=localhost dbname=pesquisa sslmode=disable",
			db.DriverPostgres, "host=localhost dbname=pesquisa sslmode=disable"),
		Entry("empty URL", "",
			db.DriverSQLite, "file:cadastro.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
		Entry("relative sqlite URL", "sqlite://data/app.db",
			db.DriverSQLite, "file:data/app.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
		Entry("absolute sqlite URL", "sqlite:///var/lib/app.db",
			db.DriverSQLite, "file:/var/lib/app.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
		Entry("in-memory sqlite", "sqlite://:memory:",
			db.DriverSQLite, "file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
		Entry("sqlite URL with params", "sqlite://app.db?cache=shared",
			db.DriverSQLite, "file:app.db?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
		Entry("bare path", "local.db",
			db.DriverSQLite, "file:local.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
	)
})
