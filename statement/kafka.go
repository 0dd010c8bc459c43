package statement

import "strings"

type (
	// KafkaSASL is the SASL flavor of Kafka authentication.
	KafkaSASL struct {
		Mechanism            string
		Username             Value
		Password             Value
		CertificateAuthority Value
	}

	// KafkaSSL is the mutual-TLS flavor of Kafka authentication.
	KafkaSSL struct {
		Key                  Value
		Certificate          Value
		CertificateAuthority Value
	}

	// KafkaParams configures a CREATE CONNECTION ... TO KAFKA statement.
	// At most one of SASL and SSL is set; their option sets are disjoint.
	KafkaParams struct {
		Brokers []string
		SASL    *KafkaSASL
		SSL     *KafkaSSL
	}
)

// CreateKafkaConnection builds the CREATE CONNECTION statement for a Kafka
// broker or broker set.
func CreateKafkaConnection(obj Object, params KafkaParams) string {
	lines := []string{brokerFragment(params.Brokers)}

	var opts []option
	switch {
	case params.SASL != nil:
		opts = []option{
			{"SASL MECHANISMS", Text(params.SASL.Mechanism)},
			{"SASL USERNAME", params.SASL.Username},
			{"SASL PASSWORD", params.SASL.Password},
			{"SSL CERTIFICATE AUTHORITY", params.SASL.CertificateAuthority},
		}
	case params.SSL != nil:
		opts = []option{
			{"SSL KEY", params.SSL.Key},
			{"SSL CERTIFICATE", params.SSL.Certificate},
			{"SSL CERTIFICATE AUTHORITY", params.SSL.CertificateAuthority},
		}
	}

	lines = append(lines, renderOptions(opts)...)

	return createConnection(obj, "KAFKA", lines)
}

// brokerFragment renders a single broker as BROKER '<hostport>' and
// multiple brokers as a parenthesized BROKERS list.
func brokerFragment(brokers []string) string {
	if len(brokers) == 1 {
		return "BROKER " + QuoteString(brokers[0])
	}

	quoted := make([]string, len(brokers))
	for i, broker := range brokers {
		quoted[i] = QuoteString(broker)
	}

	return "BROKERS (\n" + strings.Join(quoted, ",\n") + "\n)"
}
