/*
File    : eye/print_visitor.go
Project : Eye Language Interpreter
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/eye-lang/eye/parser"
)

const INDENT_SIZE = 4

// PrintingVisitor is a visitor that renders the AST as an indented tree.
// It implements parser.NodeVisitor and accumulates output in a buffer.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation prefix to the buffer
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line to the buffer
func (p *PrintingVisitor) line(format string, a ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, a...))
	p.Buf.WriteString("\n")
}

// visitBlock visits every statement of a block one level deeper
func (p *PrintingVisitor) visitBlock(block parser.Block) {
	p.Indent += INDENT_SIZE
	for _, stmt := range block {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitRootNode visits the root node
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.line("Program")
	p.visitBlock(node.Statements)
}

// VisitNumberLiteralExpressionNode visits a number literal
func (p *PrintingVisitor) VisitNumberLiteralExpressionNode(node parser.NumberLiteralExpressionNode) {
	p.line("Number (%d)", node.Value)
}

// VisitStringLiteralExpressionNode visits a string literal
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node parser.StringLiteralExpressionNode) {
	p.line("Str (%q)", node.Value)
}

// VisitBooleanLiteralExpressionNode visits a boolean literal
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node parser.BooleanLiteralExpressionNode) {
	p.line("Bool (%t)", node.Value)
}

// VisitSymbolExpressionNode visits an identifier
func (p *PrintingVisitor) VisitSymbolExpressionNode(node parser.SymbolExpressionNode) {
	p.line("Symbol (%s)", node.Name)
}

// VisitBinaryExpressionNode visits a binary expression and its operands
func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.line("Binary (%s)", node.Operator.String())
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode visits a call and its arguments
func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.line("Call (%s)", node.Identifier)
	p.visitBlock(node.Args)
}

// VisitAssignStatementNode visits a value binding
func (p *PrintingVisitor) VisitAssignStatementNode(node parser.AssignStatementNode) {
	p.line("Assign (%s)", node.Identifier)
	p.visitBlock(parser.Block{node.Value})
}

// VisitPrintStatementNode visits a print statement
func (p *PrintingVisitor) VisitPrintStatementNode(node parser.PrintStatementNode) {
	p.line("Print")
	p.visitBlock(parser.Block{node.Value})
}

// VisitThrowStatementNode visits a throw statement
func (p *PrintingVisitor) VisitThrowStatementNode(node parser.ThrowStatementNode) {
	p.line("Throw (%q)", node.Message)
}

// VisitReturnStatementNode visits a return statement
func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.line("Return")
	p.visitBlock(parser.Block{node.Value})
}

// VisitProcStatementNode visits a procedure definition and its body
func (p *PrintingVisitor) VisitProcStatementNode(node parser.ProcStatementNode) {
	p.line("Proc (%s) given %v", node.Identifier, node.Args)
	p.visitBlock(node.Body)
}

// VisitIfStatementNode visits an if/elif/else conditional and its arms
func (p *PrintingVisitor) VisitIfStatementNode(node parser.IfStatementNode) {
	p.line("If")
	p.visitBlock(parser.Block{node.This.Conditional})
	p.visitBlock(node.This.Body)
	for _, elif := range node.Elifs {
		p.line("Elif")
		p.visitBlock(parser.Block{elif.Conditional})
		p.visitBlock(elif.Body)
	}
	if node.Else != nil {
		p.line("Else")
		p.visitBlock(node.Else)
	}
}

// VisitDoStatementNode visits a counted loop
func (p *PrintingVisitor) VisitDoStatementNode(node parser.DoStatementNode) {
	if node.Identifier != "" {
		p.line("Do (%s)", node.Identifier)
	} else {
		p.line("Do")
	}
	p.visitBlock(parser.Block{node.Count})
	p.visitBlock(node.Body)
}

// VisitSemicolonStatementNode visits a bare semicolon
func (p *PrintingVisitor) VisitSemicolonStatementNode(node parser.SemicolonStatementNode) {
	p.line("Semicolon")
}

// VisitEOFNode visits an end-of-input marker
func (p *PrintingVisitor) VisitEOFNode(node parser.EOFNode) {
	p.line("EOF")
}

// String returns the accumulated tree rendering
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
