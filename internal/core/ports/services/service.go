package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Goal        GoalSvcFacade
	Note        NoteSvcFacade
	Reminder    ReminderSvcFacade
	Activity    ActivitySvcFacade
}
