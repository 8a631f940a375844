package shopperevents

const (
	TopicName            = "shopper"
	accountCreatedName   = TopicName + ".account.created"
	accountSignedInName  = TopicName + ".account.signedin"
	accountSignedOutName = TopicName + ".account.signedout"
)

type AccountCreated struct {
	AccountUID string
	Email      string
}

func (e AccountCreated) GetEventTypeName() string {
	return accountCreatedName
}

func (e AccountCreated) GetAggregateName() string {
	return e.AccountUID
}

type AccountSignedIn struct {
	AccountUID string
}

func (e AccountSignedIn) GetEventTypeName() string {
	return accountSignedInName
}

func (e AccountSignedIn) GetAggregateName() string {
	return e.AccountUID
}

type AccountSignedOut struct {
	AccountUID string
}

func (e AccountSignedOut) GetEventTypeName() string {
	return accountSignedOutName
}

func (e AccountSignedOut) GetAggregateName() string {
	return e.AccountUID
}
