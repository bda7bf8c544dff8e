package syncservice

type serviceCreated struct {
	Message string `logevent:"message,default=sync-service-created"`
}

type serviceDestroyed struct {
	Message string `logevent:"message,default=sync-service-destroyed"`
}

type handlerConstructed struct {
	Handler string `logevent:"handler"`
	Message string `logevent:"message,default=sync-handler-constructed"`
}

type constructionFailed struct {
	Handler string `logevent:"handler"`
	Failure string `logevent:"failure"`
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=sync-handler-construction-failed"`
}

type activationFailed struct {
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=sync-service-activation-failed"`
}
