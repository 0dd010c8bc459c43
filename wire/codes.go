package wire

// Code is a SQLSTATE-style error code attached to a statement error.
type Code string

const (
	CodeSuccessfulCompletion         Code = "00000"
	CodeWarning                      Code = "01000"
	CodeFeatureNotSupported          Code = "0A000"
	CodeNumericValueOutOfRange       Code = "22003"
	CodeInvalidParameterValue        Code = "22023"
	CodeUniqueViolation              Code = "23505"
	CodeCheckViolation               Code = "23514"
	CodeInvalidTransactionState      Code = "25000"
	CodeInvalidAuthorization         Code = "28000"
	CodeInsufficientPrivilege        Code = "42501"
	CodeSyntaxError                  Code = "42601"
	CodeAmbiguousColumn              Code = "42702"
	CodeUndefinedColumn              Code = "42703"
	CodeUndefinedObject              Code = "42704"
	CodeDuplicateObject              Code = "42710"
	CodeWrongObjectType              Code = "42809"
	CodeUndefinedTable               Code = "42P01"
	CodeDuplicateDatabase            Code = "42P04"
	CodeDuplicateSchema              Code = "42P06"
	CodeDuplicateTable               Code = "42P07"
	CodeInsufficientResources        Code = "53000"
	CodeDiskFull                     Code = "53100"
	CodeQueryCanceled                Code = "57014"
	CodeObjectNotInPrerequisiteState Code = "55000"
	CodeInternalError                Code = "XX000"
)

var codeNames = map[Code]string{
	CodeSuccessfulCompletion:         "successful_completion",
	CodeWarning:                      "warning",
	CodeFeatureNotSupported:          "feature_not_supported",
	CodeNumericValueOutOfRange:       "numeric_value_out_of_range",
	CodeInvalidParameterValue:        "invalid_parameter_value",
	CodeUniqueViolation:              "unique_violation",
	CodeCheckViolation:               "check_violation",
	CodeInvalidTransactionState:      "invalid_transaction_state",
	CodeInvalidAuthorization:         "invalid_authorization_specification",
	CodeInsufficientPrivilege:        "insufficient_privilege",
	CodeSyntaxError:                  "syntax_error",
	CodeAmbiguousColumn:              "ambiguous_column",
	CodeUndefinedColumn:              "undefined_column",
	CodeUndefinedObject:              "undefined_object",
	CodeDuplicateObject:              "duplicate_object",
	CodeWrongObjectType:              "wrong_object_type",
	CodeUndefinedTable:               "undefined_table",
	CodeDuplicateDatabase:            "duplicate_database",
	CodeDuplicateSchema:              "duplicate_schema",
	CodeDuplicateTable:               "duplicate_table",
	CodeInsufficientResources:        "insufficient_resources",
	CodeDiskFull:                     "disk_full",
	CodeQueryCanceled:                "query_canceled",
	CodeObjectNotInPrerequisiteState: "object_not_in_prerequisite_state",
	CodeInternalError:                "internal_error",
}

// Known reports whether the code is part of the engine's enumeration.
func (c Code) Known() bool {
	_, ok := codeNames[c]
	return ok
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return string(c)
}
