package pipeline

// interpolateAttributes blends the F attribute floats of a triangle's
// three vertices into dst. alpha/beta/gamma are the
// screen-space barycentric weights; w0/w1/w2 are the vertices' clip-space
// w (post-divide denominators), used only by Smooth.
func interpolateAttributes(dst []float64, rules []InterpRule, attr0, attr1, attr2 []float64, alpha, beta, gamma, w0, w1, w2 float64) {
	var aP, bP, gP float64
	needSmooth := false
	for _, r := range rules {
		if r == Smooth {
			needSmooth = true
			break
		}
	}
	if needSmooth {
		s := alpha/w0 + beta/w1 + gamma/w2
		if s != 0 {
			aP = (alpha / w0) / s
			bP = (beta / w1) / s
			gP = (gamma / w2) / s
		}
	}

	for i, rule := range rules {
		switch rule {
		case Flat:
			dst[i] = attr0[i]
		case NoPerspective:
			dst[i] = alpha*attr0[i] + beta*attr1[i] + gamma*attr2[i]
		case Smooth:
			dst[i] = aP*attr0[i] + bP*attr1[i] + gP*attr2[i]
		}
	}
}
