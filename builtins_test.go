package main

import "testing"

func TestBuiltins(t *testing.T) {
	machineTestCases{
		machineTest("書く prints integers and text").
			withInput("42 書く 「と」書く -5 書く").
			expectOutput("42と-5").
			expectStack(),

		machineTest("書く on an empty stack underflows").
			withInput("書く").
			expectError(ErrStackUnderflow),

		machineTest("改行").
			withInput("改行 改行").
			expectOutput("\n\n"),

		machineTest("深さ pushes the depth before its own result").
			withInput("深さ 1 2 深さ").
			expectStack(Int(0), Int(1), Int(2), Int(3)),

		machineTest("つなぐ joins two texts").
			withInput("「こん」 「にちは」 つなぐ").
			expectStack(Text("こんにちは")),

		machineTest("つなぐ rejects integers").
			withInput("「こん」 1 つなぐ").
			expectError(TypeError{Want: TextValue, Got: IntValue}),

		machineTest("ゼロか true").
			withInput("0 ゼロか").
			expectStack(Int(1)),

		machineTest("ゼロか false").
			withInput("-3 ゼロか").
			expectStack(Int(0)),

		machineTest("足す").
			withInput("3 4 足す").
			expectStack(Int(7)),

		machineTest("足す rejects text").
			withInput("「あ」 4 入れ替える 足す").
			expectError(TypeError{Want: IntValue, Got: TextValue}),

		machineTest("引く subtracts top from second").
			withInput("10 4 引く").
			expectStack(Int(6)),

		machineTest("掛ける").
			withInput("6 7 掛ける").
			expectStack(Int(42)),

		machineTest("捨てる").
			withInput("1 2 捨てる").
			expectStack(Int(1)),

		machineTest("入れ替える").
			withInput("1 2 入れ替える").
			expectStack(Int(2), Int(1)),

		machineTest("複写 copies the bottom, not the top").
			withInput("1 2 3 複写").
			expectStack(Int(1), Int(2), Int(3), Int(1)),

		machineTest("複写 on a single value duplicates it").
			withInput("「こんにちは」 複写").
			expectStack(Text("こんにちは"), Text("こんにちは")),

		machineTest("負にする negates the bottom in place").
			withInput("1 2 3 負にする").
			expectStack(Int(-1), Int(2), Int(3)),

		machineTest("負にする rejects a text bottom").
			withInput("「あ」 1 負にする").
			expectError(TypeError{Want: IntValue, Got: TextValue}),

		machineTest("複写 on an empty stack underflows").
			withInput("複写").
			expectError(ErrStackUnderflow),
	}.run(t)
}
