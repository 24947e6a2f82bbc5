package export

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/lensnowovo/smart-pe-todo/task"
)

// XMLReport builds an XML document describing the given instances, one
// <task> element per instance with its entities and checklist.
func XMLReport(instances []task.Instance) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("tasks")
	root.CreateAttr("count", strconv.Itoa(len(instances)))

	for _, inst := range instances {
		el := root.CreateElement("task")
		el.CreateAttr("id", inst.ID)
		el.CreateElement("title").SetText(inst.Title)
		el.CreateElement("dueDate").SetText(inst.DueDate)
		el.CreateElement("recurrenceDate").SetText(inst.RecurrenceDate)
		el.CreateElement("priority").SetText(string(inst.Priority))
		el.CreateElement("generatedFrom").SetText(inst.GeneratedFrom)
		el.CreateElement("completed").SetText(strconv.FormatBool(inst.Completed))

		addNameList(el, "funds", "fund", inst.Funds)
		addNameList(el, "lps", "lp", inst.LP)
		addNameList(el, "portfolio", "company", inst.Portfolio)
		addNameList(el, "tags", "tag", inst.Tags)

		if len(inst.Checklist) > 0 {
			cl := el.CreateElement("checklist")
			for _, item := range inst.Checklist {
				ci := cl.CreateElement("item")
				ci.CreateAttr("id", item.ID)
				ci.CreateAttr("done", strconv.FormatBool(item.Done))
				ci.SetText(item.Text)
			}
		}
	}
	return doc
}

func addNameList(parent *etree.Element, listTag, itemTag string, values []string) {
	if len(values) == 0 {
		return
	}
	list := parent.CreateElement(listTag)
	for _, v := range values {
		list.CreateElement(itemTag).SetText(v)
	}
}

// WriteXML renders the report with indentation.
func WriteXML(w io.Writer, instances []task.Instance) error {
	doc := XMLReport(instances)
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
