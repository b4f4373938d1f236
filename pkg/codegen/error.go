package codegen

import (
	"recscope/pkg/color"
)

func (c *Codegen) addError(e string) {
	c.errors = append(c.errors, e)
}

// where names the function being lowered, or the top level
func (c *Codegen) where() string {
	if c.inFunction {
		return "function " + color.BlueText(c.funcName)
	}
	return "top level"
}

func (c *Codegen) addInvalidIdentifierError(name, what string) {
	msg := color.RedText("Invalid "+what) + " `" + color.BlueText(name) + "`"
	msg += " in " + color.YellowText(c.where())
	c.addError(msg)
}

func (c *Codegen) addReturnOutsideFunctionError() {
	c.addError(color.RedText("Return outside function") + " at " + color.YellowText(c.where()))
}

func (c *Codegen) addNestedFunctionError(name string) {
	msg := color.RedText("Nested function definition") + " `" + color.BlueText(name) + "`"
	msg += " in " + color.YellowText(c.where())
	c.addError(msg)
}

func (c *Codegen) addDuplicateParameterError(funcName, param string) {
	msg := color.RedText("Duplicate parameter") + " `" + color.BlueText(param) + "`"
	msg += " in function " + color.YellowText(funcName)
	c.addError(msg)
}

func (c *Codegen) addUnknownNodeError(kind string) {
	c.addError(color.RedText("Unsupported syntax node") + " " + color.BlueText(kind) + " in " + color.YellowText(c.where()))
}

func (c *Codegen) GetErrors() []string {
	return c.errors
}
