package sample

func example(t T) {
	should.Be(t, user.Name, "bob")
	should.ContainKey(t,
		settings,
		"NOT THERE")
	should.BeTypeOf[int](t, count)
	should.Panic(t, func() { explode(1) })
	should.AllMatch(t, values, func(v int) bool { return v > 0 })
	_ = []int{should.Be(t, first, 1), should.Be(t, second, 2)}
	_ = []int{should.Be(t, total, 1), should.Be(t, total, 2)}
}
