// Package polygen generates synthetic multivariate polynomials with an exact,
// tunable difficulty, for benchmarking constraint-system compilers.
//
// 🚀 What is polygen?
//
//	Given a target δ, polygen builds P(x) = Σ cᵢ · Π xⱼ^Kᵢⱼ whose baseline
//	metric Kbase(P) = Σᵢ max(0, Eᵢ − 1) equals δ exactly, where Eᵢ is the total
//	degree of monomial i. Instances are reproducible under a seed and their
//	exponent matrices have unique rows and no unused variable whenever that
//	is combinatorially achievable.
//
// Under the hood, everything is organized into a few packages:
//
//	matrix/     — non-negative integer exponent matrix, row keys, unit transfers
//	generator/  — size choice, row totals, exponent distribution, repair,
//	              coefficients, instance assembly, batches
//	render/     — plain-text / LaTeX / JSON polynomial views, HTML degree charts
//	cmd/polygen — command line front end (gen, sizes, batch)
//
// Quick start:
//
//	inst, err := generator.Generate(10, generator.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(inst.Expression()) // baseline == 10
package polygen
