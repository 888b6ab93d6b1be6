package hashset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"

	"jsouthworth.net/go/assoc/hashset"
)

var _ = Describe("Set Tests", func() {
	It("Will create a new, empty set correctly", func() {
		s := hashset.NewString()
		Expect(s).ToNot(BeNil())
		Expect(s.Size()).To(Equal(0))
		Expect(s.IsEmpty()).To(BeTrue())
		Expect(s.Contains()).To(BeTrue())
		Expect(s.Values()).To(BeEmpty())
	})

	It("Will add and remove items correctly", func() {
		s := hashset.NewString()
		a, b := uuid.NewString(), uuid.NewString()
		s.Add(a, b)
		Expect(s.Size()).To(Equal(2))
		Expect(s.Contains(a)).To(BeTrue())
		Expect(s.Contains(a, b)).To(BeTrue())
		s.Add(a)
		Expect(s.Size()).To(Equal(2))
		s.Remove(a)
		Expect(s.Contains(a)).To(BeFalse())
		Expect(s.Contains(a, b)).To(BeFalse())
		Expect(s.Size()).To(Equal(1))
		s.Remove(a)
		Expect(s.Size()).To(Equal(1))
	})

	It("Will accept a custom hash", func() {
		s := hashset.New[int](func(k int) uint32 { return uint32(k) }, 3, 1, 2)
		Expect(s.Values()).To(Equal([]int{1, 2, 3}))
		Expect(s.Contains(1, 2, 3)).To(BeTrue())
	})

	It("Will compute unions, intersections and differences", func() {
		s := hashset.NewString("a", "b", "c")
		o := hashset.NewString("b", "c", "d")
		Expect(s.Union(o).Values()).To(ConsistOf("a", "b", "c", "d"))
		Expect(s.Intersection(o).Values()).To(ConsistOf("b", "c"))
		Expect(s.Difference(o).Values()).To(ConsistOf("a"))
		Expect(o.Difference(s).Values()).To(ConsistOf("d"))
	})

	It("Will not mutate the operands of set algebra", func() {
		s := hashset.NewString("a", "b")
		o := hashset.NewString("b")
		_ = s.Union(o)
		_ = s.Intersection(o)
		_ = s.Difference(o)
		Expect(s.Values()).To(ConsistOf("a", "b"))
		Expect(o.Values()).To(ConsistOf("b"))
	})

	It("Will clone into an independent set", func() {
		s := hashset.NewString("a")
		c := s.Clone()
		c.Add("b")
		Expect(s.Contains("b")).To(BeFalse())
		Expect(c.Contains("a", "b")).To(BeTrue())
	})

	It("Will clear and accept new items", func() {
		s := hashset.NewString(uuid.NewString(), uuid.NewString())
		s.Clear()
		Expect(s.IsEmpty()).To(BeTrue())
		s.Add("a")
		Expect(s.Contains("a")).To(BeTrue())
		Expect(s.Size()).To(Equal(1))
	})

	It("Will iterate every item exactly once", func() {
		items := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
		s := hashset.NewString(items...)
		var seen []string
		for item := range s.All() {
			seen = append(seen, item)
		}
		Expect(seen).To(ConsistOf(items))
	})

	It("Will round trip through JSON", func() {
		s := hashset.NewString("a", "b", "c")
		data, err := s.ToJSON()
		Expect(err).ToNot(HaveOccurred())
		restored := hashset.NewString()
		Expect(restored.FromJSON(data)).To(Succeed())
		Expect(restored.Values()).To(ConsistOf("a", "b", "c"))
		Expect(restored.FromJSON([]byte("{"))).ToNot(Succeed())
	})
})
