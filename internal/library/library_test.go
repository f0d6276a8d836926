package library_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physcalc/internal/catalog"
	"github.com/san-kum/physcalc/internal/config"
	"github.com/san-kum/physcalc/internal/library"
)

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Max(1e-9, math.Abs(want))
}

var _ = Describe("Library", func() {
	var lib *library.Library

	BeforeEach(func() {
		lib = library.New()
	})

	It("registers the chapters in textbook order", func() {
		var numbers []int
		for _, c := range lib.Chapters() {
			numbers = append(numbers, c.Number)
		}
		Expect(numbers).To(Equal([]int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}))
	})

	It("has consistent catalogs", func() {
		Expect(lib.Validate()).To(Succeed())
	})

	Describe("chapter lookup", func() {
		It("resolves numbers and slugs to the same chapter", func() {
			byNumber, err := lib.Chapter("14")
			Expect(err).NotTo(HaveOccurred())
			bySlug, err := lib.Chapter("fluids")
			Expect(err).NotTo(HaveOccurred())
			Expect(byNumber).To(BeIdenticalTo(bySlug))
		})

		It("rejects unknown chapters", func() {
			_, err := lib.Chapter("99")
			Expect(err).To(MatchError("unknown chapter: 99"))
		})

		It("finds equations by name or solver ID", func() {
			_, byName, err := lib.Lookup("13", "escape velocity")
			Expect(err).NotTo(HaveOccurred())
			_, byID, err := lib.Lookup("gravitation", "escape_velocity")
			Expect(err).NotTo(HaveOccurred())
			Expect(byName).To(BeIdenticalTo(byID))
		})

		It("reports unknown solver IDs", func() {
			_, err := lib.Solver("perpetual_motion")
			Expect(err).To(MatchError(catalog.ErrUnknownEquation))
		})
	})

	Describe("solvers", func() {
		It("uses unique IDs", func() {
			seen := map[string]bool{}
			for _, e := range lib.Solvers() {
				Expect(seen).NotTo(HaveKey(e.Equation.Solver.ID))
				seen[e.Equation.Solver.ID] = true
			}
		})

		It("has a complete preset for every solver", func() {
			for _, e := range lib.Solvers() {
				s := e.Equation.Solver
				names := config.ListPresets(s.ID)
				Expect(names).NotTo(BeEmpty(), "no preset for %s", s.ID)
				for _, name := range names {
					p := config.GetPreset(s.ID, name)
					for _, param := range s.Params {
						Expect(p).To(HaveKey(param), "%s/%s lacks %s", s.ID, name, param)
					}
					Expect(p).To(HaveLen(len(s.Params)), "%s/%s has extra parameters", s.ID, name)
				}
			}
		})

		It("reproduces the forward quantity of every preset", func() {
			for _, e := range lib.Solvers() {
				s := e.Equation.Solver
				fwd := s.Forward()
				for _, name := range config.ListPresets(s.ID) {
					p := config.GetPreset(s.ID, name)
					got, err := s.Solve(p.Without(fwd))
					Expect(err).NotTo(HaveOccurred(), "%s/%s", s.ID, name)
					Expect(relErr(got, p[fwd])).To(BeNumerically("<", 1e-3), "%s/%s: got %v, want %v", s.ID, name, got, p[fwd])
				}
			}
		})

		// Some inverses have two roots; check the solved value is consistent
		// rather than identical to the preset.
		It("round-trips every parameter of every preset", func() {
			for _, e := range lib.Solvers() {
				s := e.Equation.Solver
				fwd := s.Forward()
				for _, name := range config.ListPresets(s.ID) {
					p := config.GetPreset(s.ID, name)
					for _, param := range s.Params[1:] {
						solved, err := s.Solve(p.Without(param))
						Expect(err).NotTo(HaveOccurred(), "%s/%s solving %s", s.ID, name, param)

						args := p.Without(fwd)
						args[param] = solved
						got, err := s.Solve(args)
						Expect(err).NotTo(HaveOccurred(), "%s/%s re-solving with %s=%v", s.ID, name, param, solved)
						Expect(relErr(got, p[fwd])).To(BeNumerically("<", 1e-3),
							"%s/%s via %s: got %v, want %v", s.ID, name, param, got, p[fwd])
					}
				}
			}
		})
	})

	Describe("solving through a chapter", func() {
		It("maps display symbols to parameters", func() {
			c, eq, err := lib.Lookup("fluids", "pressure")
			Expect(err).NotTo(HaveOccurred())
			force, area := 500.0, 0.25
			sol, err := c.Solve(eq, map[string]*float64{"p": nil, "F": &force, "A": &area})
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.Symbol).To(Equal("p"))
			Expect(sol.Param).To(Equal("pressure"))
			Expect(sol.Value).To(BeNumerically("~", 2000, 1e-9))
		})
	})
})
