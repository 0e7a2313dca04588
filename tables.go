package iso8583

// Base rule tables. Data types are not part of these tables: each dialect
// derives them in spec.go.

var base1987 = baseTable{
	1:   {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Bitmap"},
	2:   {Content: ContentN, MaxLength: 19, Length: LengthLLVAR, Description: "Primary account number (PAN)"},
	3:   {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "Processing code"},
	4:   {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Amount, transaction"},
	5:   {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Amount, settlement"},
	6:   {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Amount, cardholder billing"},
	7:   {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Transmission date & time"},
	8:   {Content: ContentN, MaxLength: 8, Length: LengthFixed, Description: "Amount, cardholder billing fee"},
	9:   {Content: ContentN, MaxLength: 8, Length: LengthFixed, Description: "Conversion rate, settlement"},
	10:  {Content: ContentN, MaxLength: 8, Length: LengthFixed, Description: "Conversion rate, cardholder billing"},
	11:  {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "System trace audit number"},
	12:  {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "Time, local transaction (hhmmss)"},
	13:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, local transaction (MMDD)"},
	14:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, expiration"},
	15:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, settlement"},
	16:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, conversion"},
	17:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, capture"},
	18:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Merchant type"},
	19:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Acquiring institution country code"},
	20:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "PAN extended, country code"},
	21:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Forwarding institution country code"},
	22:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Point of service entry mode"},
	23:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Application PAN sequence number"},
	24:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Network International identifier (NII)"},
	25:  {Content: ContentN, MaxLength: 2, Length: LengthFixed, Description: "Point of service condition code"},
	26:  {Content: ContentN, MaxLength: 2, Length: LengthFixed, Description: "Point of service capture code"},
	27:  {Content: ContentN, MaxLength: 1, Length: LengthFixed, Description: "Authorizing identification response length"},
	28:  {Content: ContentAN, MaxLength: 9, Length: LengthFixed, Description: "Amount, transaction fee"},
	29:  {Content: ContentAN, MaxLength: 9, Length: LengthFixed, Description: "Amount, settlement fee"},
	30:  {Content: ContentAN, MaxLength: 9, Length: LengthFixed, Description: "Amount, transaction processing fee"},
	31:  {Content: ContentAN, MaxLength: 9, Length: LengthFixed, Description: "Amount, settlement processing fee"},
	32:  {Content: ContentN, MaxLength: 11, Length: LengthLLVAR, Description: "Acquiring institution identification code"},
	33:  {Content: ContentN, MaxLength: 11, Length: LengthLLVAR, Description: "Forwarding institution identification code"},
	34:  {Content: ContentNS, MaxLength: 28, Length: LengthLLVAR, Description: "Primary account number, extended"},
	35:  {Content: ContentZ, MaxLength: 37, Length: LengthLLVAR, Description: "Track 2 data"},
	36:  {Content: ContentN, MaxLength: 104, Length: LengthLLLVAR, Description: "Track 3 data"},
	37:  {Content: ContentAN, MaxLength: 12, Length: LengthFixed, Description: "Retrieval reference number"},
	38:  {Content: ContentAN, MaxLength: 6, Length: LengthFixed, Description: "Authorization identification response"},
	39:  {Content: ContentAN, MaxLength: 2, Length: LengthFixed, Description: "Response code"},
	40:  {Content: ContentAN, MaxLength: 3, Length: LengthFixed, Description: "Service restriction code"},
	41:  {Content: ContentANS, MaxLength: 8, Length: LengthFixed, Description: "Card acceptor terminal identification"},
	42:  {Content: ContentANS, MaxLength: 15, Length: LengthFixed, Description: "Card acceptor identification code"},
	43:  {Content: ContentANS, MaxLength: 40, Length: LengthFixed, Description: "Card acceptor name/location"},
	44:  {Content: ContentAN, MaxLength: 25, Length: LengthLLVAR, Description: "Additional response data"},
	45:  {Content: ContentAN, MaxLength: 76, Length: LengthLLVAR, Description: "Track 1 data"},
	46:  {Content: ContentAN, MaxLength: 999, Length: LengthLLLVAR, Description: "Additional data - ISO"},
	47:  {Content: ContentAN, MaxLength: 999, Length: LengthLLLVAR, Description: "Additional data - national"},
	48:  {Content: ContentAN, MaxLength: 999, Length: LengthLLLVAR, Description: "Additional data - private"},
	49:  {Content: ContentAN, MaxLength: 3, Length: LengthFixed, Description: "Currency code, transaction"},
	50:  {Content: ContentAN, MaxLength: 3, Length: LengthFixed, Description: "Currency code, settlement"},
	51:  {Content: ContentAN, MaxLength: 3, Length: LengthFixed, Description: "Currency code, cardholder billing"},
	52:  {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Personal identification number data"},
	53:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Security related control information"},
	54:  {Content: ContentAN, MaxLength: 120, Length: LengthLLLVAR, Description: "Additional amounts"},
	55:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved ISO"},
	56:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved ISO"},
	57:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved national"},
	58:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved national"},
	59:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved national"},
	60:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved national"},
	61:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved private"},
	62:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved private"},
	63:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved private"},
	64:  {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Message authentication code (MAC)"},
	65:  {Content: ContentB, MaxLength: 1, Length: LengthFixed, Description: "Bitmap, extended"},
	66:  {Content: ContentN, MaxLength: 1, Length: LengthFixed, Description: "Settlement code"},
	67:  {Content: ContentN, MaxLength: 2, Length: LengthFixed, Description: "Extended payment code"},
	68:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Receiving institution country code"},
	69:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Settlement institution country code"},
	70:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Network management information code"},
	71:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Message number"},
	72:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Message number, last"},
	73:  {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "Date, action (YYMMDD)"},
	74:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Credits, number"},
	75:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Credits, reversal number"},
	76:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Debits, number"},
	77:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Debits, reversal number"},
	78:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Transfer number"},
	79:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Transfer, reversal number"},
	80:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Inquiries number"},
	81:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Authorizations, number"},
	82:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Credits, processing fee amount"},
	83:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Credits, transaction fee amount"},
	84:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Debits, processing fee amount"},
	85:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Debits, transaction fee amount"},
	86:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Credits, amount"},
	87:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Credits, reversal amount"},
	88:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Debits, amount"},
	89:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Debits, reversal amount"},
	90:  {Content: ContentN, MaxLength: 42, Length: LengthFixed, Description: "Original data elements"},
	91:  {Content: ContentAN, MaxLength: 1, Length: LengthFixed, Description: "File update code"},
	92:  {Content: ContentAN, MaxLength: 2, Length: LengthFixed, Description: "File security code"},
	93:  {Content: ContentAN, MaxLength: 5, Length: LengthFixed, Description: "Response indicator"},
	94:  {Content: ContentAN, MaxLength: 7, Length: LengthFixed, Description: "Service indicator"},
	95:  {Content: ContentAN, MaxLength: 42, Length: LengthFixed, Description: "Replacement amounts"},
	96:  {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Message security code"},
	97:  {Content: ContentAN, MaxLength: 17, Length: LengthFixed, Description: "Amount, net settlement"},
	98:  {Content: ContentANS, MaxLength: 25, Length: LengthFixed, Description: "Payee"},
	99:  {Content: ContentN, MaxLength: 11, Length: LengthLLVAR, Description: "Settlement institution identification code"},
	100: {Content: ContentN, MaxLength: 11, Length: LengthLLVAR, Description: "Receiving institution identification code"},
	101: {Content: ContentANS, MaxLength: 17, Length: LengthLLVAR, Description: "File name"},
	102: {Content: ContentANS, MaxLength: 28, Length: LengthLLVAR, Description: "Account identification 1"},
	103: {Content: ContentANS, MaxLength: 28, Length: LengthLLVAR, Description: "Account identification 2"},
	104: {Content: ContentANS, MaxLength: 100, Length: LengthLLLVAR, Description: "Transaction description"},
	105: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	106: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	107: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	108: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	109: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	110: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	111: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	112: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	113: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	114: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	115: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	116: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	117: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	118: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	119: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	120: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	121: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	122: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	123: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	124: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	125: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	126: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	127: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	128: {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Message authentication code"},
}

var base1993 = baseTable{
	1:   {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Bitmap"},
	2:   {Content: ContentN, MaxLength: 19, Length: LengthLLVAR, Description: "Primary account number (PAN)"},
	3:   {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "Processing code"},
	4:   {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Amount, transaction"},
	5:   {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Amount, reconciliation"},
	6:   {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Amount, cardholder billing"},
	7:   {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Date and time, transmission"},
	8:   {Content: ContentN, MaxLength: 8, Length: LengthFixed, Description: "Amount, cardholder billing fee"},
	9:   {Content: ContentN, MaxLength: 8, Length: LengthFixed, Description: "Conversion rate, reconciliation"},
	10:  {Content: ContentN, MaxLength: 8, Length: LengthFixed, Description: "Conversion rate, cardholder billing"},
	11:  {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "System trace audit number"},
	12:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Date and time, local transaction"},
	13:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, effective"},
	14:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, expiration"},
	15:  {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "Date, settlement"},
	16:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, conversion"},
	17:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Date, capture"},
	18:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Merchant type"},
	19:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Country code, acquiring institution"},
	20:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Country code, primary account number"},
	21:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Country code, forwarding institution"},
	22:  {Content: ContentAN, MaxLength: 12, Length: LengthFixed, Description: "Point of service data code"},
	23:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Card sequence number"},
	24:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Function code"},
	25:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Message reason code"},
	26:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Card acceptor business code"},
	27:  {Content: ContentN, MaxLength: 1, Length: LengthFixed, Description: "Approval code length"},
	28:  {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "Date, reconciliation"},
	29:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Reconciliation indicator"},
	30:  {Content: ContentN, MaxLength: 24, Length: LengthFixed, Description: "Amounts, original"},
	31:  {Content: ContentAN, MaxLength: 31, Length: LengthLLVAR, Description: "Acquirer reference data"},
	32:  {Content: ContentN, MaxLength: 11, Length: LengthLLVAR, Description: "Acquiring institution identification code"},
	33:  {Content: ContentN, MaxLength: 11, Length: LengthLLVAR, Description: "Forwarding institution identification code"},
	34:  {Content: ContentNS, MaxLength: 28, Length: LengthLLVAR, Description: "Primary account number, extended"},
	35:  {Content: ContentZ, MaxLength: 37, Length: LengthLLVAR, Description: "Track 2 data"},
	36:  {Content: ContentZ, MaxLength: 104, Length: LengthLLLVAR, Description: "Track 3 data"},
	37:  {Content: ContentAN, MaxLength: 12, Length: LengthFixed, Description: "Retrieval reference number"},
	38:  {Content: ContentAN, MaxLength: 6, Length: LengthFixed, Description: "Approval code"},
	39:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Action code"},
	40:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Service code"},
	41:  {Content: ContentANS, MaxLength: 8, Length: LengthFixed, Description: "Card acceptor terminal identification"},
	42:  {Content: ContentANS, MaxLength: 15, Length: LengthFixed, Description: "Card acceptor identification code"},
	43:  {Content: ContentANS, MaxLength: 99, Length: LengthLLVAR, Description: "Card acceptor name/location"},
	44:  {Content: ContentANS, MaxLength: 99, Length: LengthLLVAR, Description: "Additional response data"},
	45:  {Content: ContentANS, MaxLength: 76, Length: LengthLLVAR, Description: "Track 1 data"},
	46:  {Content: ContentANS, MaxLength: 204, Length: LengthLLLVAR, Description: "Amounts, fees"},
	47:  {Content: ContentAN, MaxLength: 999, Length: LengthLLLVAR, Description: "Additional data - national"},
	48:  {Content: ContentAN, MaxLength: 999, Length: LengthLLLVAR, Description: "Additional data - private"},
	49:  {Content: ContentAN, MaxLength: 3, Length: LengthFixed, Description: "Currency code, transaction"},
	50:  {Content: ContentAN, MaxLength: 3, Length: LengthFixed, Description: "Currency code, reconciliation"},
	51:  {Content: ContentAN, MaxLength: 3, Length: LengthFixed, Description: "Currency code, cardholder billing"},
	52:  {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Personal identification number data"},
	53:  {Content: ContentB, MaxLength: 48, Length: LengthFixed, Description: "Security related control information"},
	54:  {Content: ContentANS, MaxLength: 120, Length: LengthLLLVAR, Description: "Amounts, additional"},
	55:  {Content: ContentB, MaxLength: 255, Length: LengthLLLVAR, Description: "Integrated circuit card system related data"},
	56:  {Content: ContentN, MaxLength: 35, Length: LengthLLLVAR, Description: "Original data elements"},
	57:  {Content: ContentN, MaxLength: 3, Length: LengthLLLVAR, Description: "Authorization life cycle code"},
	58:  {Content: ContentN, MaxLength: 11, Length: LengthFixed, Description: "Authorizing agent institution identification code"},
	59:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Transport data"},
	60:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	61:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	62:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	63:  {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	64:  {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Message authentication code field"},
	65:  {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Reserved for ISO use"},
	66:  {Content: ContentN, MaxLength: 1, Length: LengthFixed, Description: "Amounts, original fees"},
	67:  {Content: ContentN, MaxLength: 2, Length: LengthFixed, Description: "Extended payment data"},
	68:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Country code, receiving institution"},
	69:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Country code, settlement institution"},
	70:  {Content: ContentN, MaxLength: 3, Length: LengthFixed, Description: "Country code, authorizing agent institution"},
	71:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Message number"},
	72:  {Content: ContentN, MaxLength: 4, Length: LengthFixed, Description: "Data record"},
	73:  {Content: ContentN, MaxLength: 6, Length: LengthFixed, Description: "Date, action"},
	74:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Credits, number"},
	75:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Credits, reversal number"},
	76:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Debits, number"},
	77:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Debits, reversal number"},
	78:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Transfer, number"},
	79:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Transfer, reversal number"},
	80:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Inquiries, number"},
	81:  {Content: ContentN, MaxLength: 10, Length: LengthFixed, Description: "Authorizations, number"},
	82:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Inquiries, reversal number"},
	83:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Payments, number"},
	84:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Payments, reversal number"},
	85:  {Content: ContentN, MaxLength: 12, Length: LengthFixed, Description: "Fee collections, number"},
	86:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Credits, amount"},
	87:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Credits, reversal amount"},
	88:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Debits, amount"},
	89:  {Content: ContentN, MaxLength: 16, Length: LengthFixed, Description: "Debits, reversal amount"},
	90:  {Content: ContentN, MaxLength: 42, Length: LengthFixed, Description: "Authorizations, reversal number"},
	91:  {Content: ContentAN, MaxLength: 1, Length: LengthFixed, Description: "Country code, transaction destination institution"},
	92:  {Content: ContentAN, MaxLength: 2, Length: LengthFixed, Description: "Country code, transaction originator institution"},
	93:  {Content: ContentAN, MaxLength: 5, Length: LengthFixed, Description: "Transaction destination institution identification code"},
	94:  {Content: ContentAN, MaxLength: 7, Length: LengthFixed, Description: "Transaction originator institution identification code"},
	95:  {Content: ContentAN, MaxLength: 42, Length: LengthFixed, Description: "Card issuer reference data"},
	96:  {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Key management data"},
	97:  {Content: ContentAN, MaxLength: 17, Length: LengthFixed, Description: "Amount, net reconciliation"},
	98:  {Content: ContentANS, MaxLength: 25, Length: LengthFixed, Description: "Payee"},
	99:  {Content: ContentN, MaxLength: 11, Length: LengthLLVAR, Description: "Settlement institution identification code"},
	100: {Content: ContentN, MaxLength: 11, Length: LengthLLVAR, Description: "Receiving institution identification code"},
	101: {Content: ContentANS, MaxLength: 17, Length: LengthLLVAR, Description: "File name"},
	102: {Content: ContentANS, MaxLength: 28, Length: LengthLLVAR, Description: "Account identification 1"},
	103: {Content: ContentANS, MaxLength: 28, Length: LengthLLVAR, Description: "Account identification 2"},
	104: {Content: ContentANS, MaxLength: 100, Length: LengthLLLVAR, Description: "Transaction description"},
	105: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Credits, chargeback amount"},
	106: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Debits, chargeback amount"},
	107: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Credits, chargeback number"},
	108: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Debits, chargeback number"},
	109: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Credits, fee amounts"},
	110: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Debits, fee amounts"},
	111: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	112: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	113: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	114: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	115: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for ISO use"},
	116: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	117: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	118: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	119: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	120: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	121: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	122: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for national use"},
	123: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	124: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	125: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	126: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	127: {Content: ContentANS, MaxLength: 999, Length: LengthLLLVAR, Description: "Reserved for private use"},
	128: {Content: ContentB, MaxLength: 8, Length: LengthFixed, Description: "Message authentication code field"},
}
