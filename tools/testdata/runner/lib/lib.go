package lib

func Loud() {}

//nolint:lint
func Quiet() {}
