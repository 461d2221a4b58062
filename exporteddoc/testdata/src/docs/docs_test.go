package docs

type TestOnly struct{}
