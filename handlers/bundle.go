package handlers

// HandlerBundle groups the handlers the route registration needs.
type HandlerBundle struct {
	FrontDesk *FrontDeskHandler
	Stats     *StatsHandler
	Auth      *AuthHandler
}
