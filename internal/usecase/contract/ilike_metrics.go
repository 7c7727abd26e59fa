package usecasecontract

// ILikeMetrics records counter activity.
type ILikeMetrics interface {
	ObserveTotal(total int64)
	IncLikes()
	IncStorageErrors(op string)
}
