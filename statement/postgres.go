package statement

// PostgresParams configures a CREATE CONNECTION ... TO POSTGRES statement.
// Unset fields are omitted from the option list.
type PostgresParams struct {
	Host                    string
	Port                    string
	Database                string
	User                    Value
	Password                Value
	SSLMode                 string
	SSLKey                  Value
	SSLCertificate          Value
	SSLCertificateAuthority Value
}

// CreatePostgresConnection builds the CREATE CONNECTION statement for a
// PostgreSQL host.
func CreatePostgresConnection(obj Object, params PostgresParams) string {
	opts := []option{
		{"HOST", Text(params.Host)},
		{"PORT", Text(params.Port)},
		{"DATABASE", Text(params.Database)},
		{"USER", params.User},
		{"PASSWORD", params.Password},
		{"SSL MODE", Text(params.SSLMode)},
		{"SSL KEY", params.SSLKey},
		{"SSL CERTIFICATE", params.SSLCertificate},
		{"SSL CERTIFICATE AUTHORITY", params.SSLCertificateAuthority},
	}

	return createConnection(obj, "POSTGRES", renderOptions(opts))
}
