package statement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrydb/console-sql/statement"
)

var testObj = statement.Object{
	Name:     "my_conn",
	Schema:   "public",
	Database: "materials",
}

func TestCreatePostgresConnection(t *testing.T) {
	r := require.New(t)

	got := statement.CreatePostgresConnection(testObj, statement.PostgresParams{
		Host:     "db.example.com",
		Port:     "5432",
		Database: "orders",
		User:     statement.Text("app"),
		Password: statement.SecretRef{Name: "pg_password", Schema: "public", Database: "materials"},
		SSLMode:  "require",
	})

	want := `CREATE CONNECTION "materials"."public"."my_conn" TO POSTGRES (
HOST 'db.example.com',
PORT 5432,
DATABASE 'orders',
USER 'app',
PASSWORD SECRET "materials"."public"."pg_password",
SSL MODE 'require'
);`
	r.Equal(want, got)
}

func TestCreatePostgresConnection_OmitsUnsetOptions(t *testing.T) {
	r := require.New(t)

	got := statement.CreatePostgresConnection(testObj, statement.PostgresParams{
		Host:     "db.example.com",
		Port:     "5432",
		Database: "orders",
		User:     statement.Text("app"),
	})

	r.NotContains(got, "PASSWORD")
	r.NotContains(got, "SSL")
	r.NotContains(got, "NULL")
}

func TestCreatePostgresConnection_TextSecret(t *testing.T) {
	r := require.New(t)

	got := statement.CreatePostgresConnection(testObj, statement.PostgresParams{
		Host:     "db.example.com",
		Port:     "5432",
		Database: "orders",
		User:     statement.Text("app"),
		Password: statement.TextSecret{Value: "hunter2"},
	})

	r.Contains(got, "PASSWORD 'hunter2'")
	r.NotContains(got, "PASSWORD SECRET")
}

func TestCreateMySQLConnection(t *testing.T) {
	r := require.New(t)

	got := statement.CreateMySQLConnection(testObj, statement.MySQLParams{
		Host:     "mysql.example.com",
		Port:     "3306",
		User:     statement.TextSecret{Value: "root"},
		Password: statement.SecretRef{Name: "mysql_pw", Schema: "public", Database: "materials"},
		SSLMode:  "required",
	})

	want := `CREATE CONNECTION "materials"."public"."my_conn" TO MYSQL (
HOST 'mysql.example.com',
PORT 3306,
USER 'root',
PASSWORD SECRET "materials"."public"."mysql_pw",
SSL MODE 'required'
);`
	r.Equal(want, got)
}

func TestCreateSQLServerConnection(t *testing.T) {
	r := require.New(t)

	got := statement.CreateSQLServerConnection(testObj, statement.SQLServerParams{
		Host:     "mssql.example.com",
		Port:     "1433",
		Database: "warehouse",
		User:     statement.Text("sa"),
		Password: statement.SecretRef{Name: "mssql_pw", Schema: "public", Database: "materials"},
	})

	want := `CREATE CONNECTION "materials"."public"."my_conn" TO SQL SERVER (
HOST 'mssql.example.com',
PORT 1433,
DATABASE 'warehouse',
USER 'sa',
PASSWORD SECRET "materials"."public"."mssql_pw"
);`
	r.Equal(want, got)
}

func TestCreateSchemaRegistryConnection(t *testing.T) {
	r := require.New(t)

	got := statement.CreateSchemaRegistryConnection(testObj, statement.SchemaRegistryParams{
		URL:      "https://registry.example.com:8081",
		Username: statement.Text("svc"),
		Password: statement.SecretRef{Name: "csr_pw", Schema: "public", Database: "materials"},
	})

	want := `CREATE CONNECTION "materials"."public"."my_conn" TO CONFLUENT SCHEMA REGISTRY (
URL 'https://registry.example.com:8081',
USERNAME 'svc',
PASSWORD SECRET "materials"."public"."csr_pw"
);`
	r.Equal(want, got)
}

func TestBuilders_Deterministic(t *testing.T) {
	r := require.New(t)

	params := statement.PostgresParams{
		Host:     "db.example.com",
		Port:     "5432",
		Database: "orders",
		User:     statement.Text("app"),
		Password: statement.TextSecret{Value: "pw"},
	}

	first := statement.CreatePostgresConnection(testObj, params)
	second := statement.CreatePostgresConnection(testObj, params)
	r.Equal(first, second)
}

func TestQuoting(t *testing.T) {
	r := require.New(t)

	r.Equal(`"we""ird"`, statement.QuoteIdentifier(`we"ird`))
	r.Equal(`'it''s'`, statement.QuoteString("it's"))
	r.Equal(`"d"."s"."n"`, statement.QualifyName("d", "s", "n"))
}

func TestCreatePostgresConnection_EscapesLiterals(t *testing.T) {
	r := require.New(t)

	got := statement.CreatePostgresConnection(testObj, statement.PostgresParams{
		Host:     "db.example.com",
		Port:     "5432",
		Database: "orders",
		User:     statement.Text("o'brien"),
	})

	r.Contains(got, "USER 'o''brien'")
}
