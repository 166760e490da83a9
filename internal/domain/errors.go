package domain

// ErrorKind classifica os erros dos casos de uso para que os chamadores
// possam tratá-los por tipo em vez de por mensagem
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindNoMatchingData
	KindInvalidInput
	KindDataQuality
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindNoMatchingData:
		return "NO_MATCHING_DATA"
	case KindInvalidInput:
		return "INVALID_INPUT"
	case KindDataQuality:
		return "DATA_QUALITY"
	default:
		return "INTERNAL"
	}
}
