package controller

// integrate hands the frame displacement to the body. Collision response is
// entirely the body's job.
func integrate(body Body, v Velocity, dt float64) {
	body.Move(v.Combined().Mul(dt))
}
