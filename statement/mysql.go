package statement

// MySQLParams configures a CREATE CONNECTION ... TO MYSQL statement.
type MySQLParams struct {
	Host                    string
	Port                    string
	User                    Value
	Password                Value
	SSLMode                 string
	SSLKey                  Value
	SSLCertificate          Value
	SSLCertificateAuthority Value
}

// CreateMySQLConnection builds the CREATE CONNECTION statement for a MySQL
// host.
func CreateMySQLConnection(obj Object, params MySQLParams) string {
	opts := []option{
		{"HOST", Text(params.Host)},
		{"PORT", Text(params.Port)},
		{"USER", params.User},
		{"PASSWORD", params.Password},
		{"SSL MODE", Text(params.SSLMode)},
		{"SSL KEY", params.SSLKey},
		{"SSL CERTIFICATE", params.SSLCertificate},
		{"SSL CERTIFICATE AUTHORITY", params.SSLCertificateAuthority},
	}

	return createConnection(obj, "MYSQL", renderOptions(opts))
}
