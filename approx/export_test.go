package approx

// PanicEpsilonInvalid exposes the WithEpsilon panic message to tests.
const PanicEpsilonInvalid = panicEpsilonInvalid
