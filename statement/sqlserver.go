package statement

// SQLServerParams configures a CREATE CONNECTION ... TO SQL SERVER
// statement.
type SQLServerParams struct {
	Host                    string
	Port                    string
	Database                string
	User                    Value
	Password                Value
	SSLCertificateAuthority Value
}

// CreateSQLServerConnection builds the CREATE CONNECTION statement for a
// SQL Server host.
func CreateSQLServerConnection(obj Object, params SQLServerParams) string {
	opts := []option{
		{"HOST", Text(params.Host)},
		{"PORT", Text(params.Port)},
		{"DATABASE", Text(params.Database)},
		{"USER", params.User},
		{"PASSWORD", params.Password},
		{"SSL CERTIFICATE AUTHORITY", params.SSLCertificateAuthority},
	}

	return createConnection(obj, "SQL SERVER", renderOptions(opts))
}
