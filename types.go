package iso8583

import "fmt"

// DataType defines how a field's bytes are represented on the wire.
// The zero value means the data type was never assigned.
type DataType int

const (
	DataTypeBCD    DataType = iota + 1 // Packed decimal, two digits per byte
	DataTypeASCII                      // Single-byte text
	DataTypeBinary                     // Raw bytes
)

func (dt DataType) String() string {
	switch dt {
	case DataTypeBCD:
		return "BCD"
	case DataTypeASCII:
		return "ASCII"
	case DataTypeBinary:
		return "BIN"
	default:
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
}

// LengthType defines how the length of a field is determined.
type LengthType int

const (
	LengthFixed LengthType = iota
	LengthLVAR
	LengthLLVAR
	LengthLLLVAR
)

// Digits returns the number of length digits carried by the prefix.
func (lt LengthType) Digits() int {
	switch lt {
	case LengthLVAR:
		return 1
	case LengthLLVAR:
		return 2
	case LengthLLLVAR:
		return 3
	default:
		return 0
	}
}

func (lt LengthType) String() string {
	switch lt {
	case LengthFixed:
		return "FIXED"
	case LengthLVAR:
		return "LVAR"
	case LengthLLVAR:
		return "LLVAR"
	case LengthLLLVAR:
		return "LLLVAR"
	default:
		return fmt.Sprintf("LengthType(%d)", int(lt))
	}
}

// ContentType is the semantic domain of a field's value.
type ContentType string

const (
	ContentA   ContentType = "a"   // Alphabetic
	ContentN   ContentType = "n"   // Numeric
	ContentS   ContentType = "s"   // Special characters
	ContentAN  ContentType = "an"  // Alphanumeric
	ContentAS  ContentType = "as"  // Alphabetic, special
	ContentNS  ContentType = "ns"  // Numeric, special
	ContentANS ContentType = "ans" // Alphanumeric, special
	ContentB   ContentType = "b"   // Binary
	ContentZ   ContentType = "z"   // Tracks 2 and 3 code set
)

// Valid reports whether ct is one of the known content types.
func (ct ContentType) Valid() bool {
	switch ct {
	case ContentA, ContentN, ContentS, ContentAN, ContentAS, ContentNS, ContentANS, ContentB, ContentZ:
		return true
	}
	return false
}

// textual reports whether ct carries alphabetic or special characters.
// Such fields always travel as text, even in packed-decimal dialects.
func (ct ContentType) textual() bool {
	switch ct {
	case ContentA, ContentS, ContentAN, ContentAS, ContentNS, ContentANS:
		return true
	}
	return false
}

// MsgVersion is the first MTI digit.
type MsgVersion int

const (
	VersionISO1987  MsgVersion = 0
	VersionISO1993  MsgVersion = 1
	VersionISO2003  MsgVersion = 2
	VersionNational MsgVersion = 8
	VersionPrivate  MsgVersion = 9
)

func (v MsgVersion) valid() bool {
	switch v {
	case VersionISO1987, VersionISO1993, VersionISO2003, VersionNational, VersionPrivate:
		return true
	}
	return false
}

func (v MsgVersion) String() string {
	switch v {
	case VersionISO1987:
		return "ISO1987"
	case VersionISO1993:
		return "ISO1993"
	case VersionISO2003:
		return "ISO2003"
	case VersionNational:
		return "National"
	case VersionPrivate:
		return "Private"
	default:
		return fmt.Sprintf("MsgVersion(%d)", int(v))
	}
}

// MsgClass is the second MTI digit.
type MsgClass int

const (
	ClassAuthorization MsgClass = iota + 1
	ClassFinancial
	ClassFileAction
	ClassReversal
	ClassReconciliation
	ClassAdministrative
	ClassFeeCollection
	ClassNetworkManagement
	ClassReserved
)

var msgClassNames = [...]string{
	ClassAuthorization:     "Authorization",
	ClassFinancial:         "Financial",
	ClassFileAction:        "FileAction",
	ClassReversal:          "Reversal",
	ClassReconciliation:    "Reconciliation",
	ClassAdministrative:    "Administrative",
	ClassFeeCollection:     "FeeCollection",
	ClassNetworkManagement: "NetworkManagement",
	ClassReserved:          "Reserved",
}

func (c MsgClass) valid() bool { return c >= ClassAuthorization && c <= ClassReserved }

func (c MsgClass) String() string {
	if c.valid() {
		return msgClassNames[c]
	}
	return fmt.Sprintf("MsgClass(%d)", int(c))
}

// MsgFunction is the third MTI digit.
type MsgFunction int

const (
	FunctionRequest MsgFunction = iota
	FunctionRequestResponse
	FunctionAdvice
	FunctionAdviceResponse
	FunctionNotification
	FunctionNotificationAck
	FunctionInstruction
	FunctionInstructionAck
)

var msgFunctionNames = [...]string{
	"Request",
	"RequestResponse",
	"Advice",
	"AdviceResponse",
	"Notification",
	"NotificationAck",
	"Instruction",
	"InstructionAck",
}

func (f MsgFunction) valid() bool { return f >= FunctionRequest && f <= FunctionInstructionAck }

func (f MsgFunction) String() string {
	if f.valid() {
		return msgFunctionNames[f]
	}
	return fmt.Sprintf("MsgFunction(%d)", int(f))
}

// MsgOrigin is the fourth MTI digit.
type MsgOrigin int

const (
	OriginAcquirer MsgOrigin = iota
	OriginAcquirerRepeat
	OriginIssuer
	OriginIssuerRepeat
	OriginOther
	OriginOtherRepeat
)

var msgOriginNames = [...]string{
	"Acquirer",
	"AcquirerRepeat",
	"Issuer",
	"IssuerRepeat",
	"Other",
	"OtherRepeat",
}

func (o MsgOrigin) valid() bool { return o >= OriginAcquirer && o <= OriginOtherRepeat }

func (o MsgOrigin) String() string {
	if o.valid() {
		return msgOriginNames[o]
	}
	return fmt.Sprintf("MsgOrigin(%d)", int(o))
}

const (
	MaxFieldNumber = 128
	BitmapSize     = 8
	mtiLength      = 4
)
