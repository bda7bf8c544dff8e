package v1

type syncFailed struct {
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=sync-failed"`
}

type bindFailed struct {
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=bind-failed"`
}
