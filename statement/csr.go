package statement

// SchemaRegistryParams configures a CREATE CONNECTION ... TO CONFLUENT
// SCHEMA REGISTRY statement.
type SchemaRegistryParams struct {
	URL                     string
	Username                Value
	Password                Value
	SSLKey                  Value
	SSLCertificate          Value
	SSLCertificateAuthority Value
}

// CreateSchemaRegistryConnection builds the CREATE CONNECTION statement
// for a Confluent Schema Registry.
func CreateSchemaRegistryConnection(obj Object, params SchemaRegistryParams) string {
	opts := []option{
		{"URL", Text(params.URL)},
		{"USERNAME", params.Username},
		{"PASSWORD", params.Password},
		{"SSL KEY", params.SSLKey},
		{"SSL CERTIFICATE", params.SSLCertificate},
		{"SSL CERTIFICATE AUTHORITY", params.SSLCertificateAuthority},
	}

	return createConnection(obj, "CONFLUENT SCHEMA REGISTRY", renderOptions(opts))
}
