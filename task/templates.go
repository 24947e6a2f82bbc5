package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
)

// BuiltinTemplates returns the starter templates for common PE fund
// operations: quarterly LP reports, capital calls, the annual LP meeting,
// and monthly portfolio valuations. Callers receive fresh copies and may
// edit them freely.
func BuiltinTemplates() []Template {
	return []Template{
		{
			ID:          "builtin-quarterly-report",
			Name:        "季度报告",
			Description: "LP季度报告标准流程",
			Title:       "{QUARTER}季度报告",
			Tags:        []string{"Quarterly Report"},
			Priority:    PriorityHigh,
			Recurrence: recurrence.Rule{
				Frequency:        recurrence.FreqQuarterly,
				NotifyDaysBefore: 14,
			},
			DueRule: DueRule{UseMonthEnd: true},
			Checklist: []ChecklistItem{
				{ID: "qr-1", Text: "汇总组合公司经营指标"},
				{ID: "qr-2", Text: "更新估值模型"},
				{ID: "qr-3", Text: "整理 LP 报告材料"},
				{ID: "qr-4", Text: "内部审阅与修订"},
				{ID: "qr-5", Text: "对 LP 发布报告"},
			},
		},
		{
			ID:          "builtin-capital-call",
			Name:        "出资通知 (Capital Call)",
			Description: "标准出资通知流程",
			Title:       "{QUARTER}出资通知 (Capital Call)",
			Tags:        []string{"Capital Call"},
			Priority:    PriorityHigh,
			Recurrence: recurrence.Rule{
				Frequency:        recurrence.FreqQuarterly,
				DayOfQuarter:     mo.Some(15),
				NotifyDaysBefore: 7,
			},
			Checklist: []ChecklistItem{
				{ID: "cc-1", Text: "收集 Capital Call 所需数据"},
				{ID: "cc-2", Text: "起草 LP 通知"},
				{ID: "cc-3", Text: "合规与法务复核"},
				{ID: "cc-4", Text: "发送出资通知"},
				{ID: "cc-5", Text: "跟踪确认回执与到账情况"},
			},
		},
		{
			ID:          "builtin-annual-meeting",
			Name:        "年度 LP 会议",
			Description: "年度投资人顾问委员会会议",
			Title:       "{YEAR}年度 LP 会议",
			Tags:        []string{"LP Meeting", "Annual"},
			Priority:    PriorityHigh,
			Recurrence: recurrence.Rule{
				Frequency:        recurrence.FreqYearly,
				Interval:         1,
				NotifyDaysBefore: 30,
			},
			Checklist: []ChecklistItem{
				{ID: "am-1", Text: "确定会议时间地点"},
				{ID: "am-2", Text: "准备年度业绩报告"},
				{ID: "am-3", Text: "发送会议邀请"},
				{ID: "am-4", Text: "收集 RSVP"},
				{ID: "am-5", Text: "准备会议材料和餐饮"},
			},
		},
		{
			ID:          "builtin-monthly-valuation",
			Name:        "月度估值更新",
			Description: "组合公司月度估值更新",
			Title:       "{MONTH}度估值更新",
			Tags:        []string{"Valuation", "Monthly"},
			Priority:    PriorityNormal,
			Recurrence: recurrence.Rule{
				Frequency:        recurrence.FreqMonthly,
				DayOfMonth:       mo.Some(5),
				NotifyDaysBefore: 3,
			},
			Checklist: []ChecklistItem{
				{ID: "mv-1", Text: "收集各公司财务数据"},
				{ID: "mv-2", Text: "更新估值模型"},
				{ID: "mv-3", Text: "与投资团队核对"},
				{ID: "mv-4", Text: "更新内部估值表"},
			},
		},
	}
}

// NewTemplateFromTask derives a recurring template from an existing task,
// anchoring the rule on the task's due date (or today when it has none).
func NewTemplateFromTask(src Instance, rule recurrence.Rule) Template {
	now := time.Now().UTC()
	anchor := src.DueDate
	if anchor == "" {
		anchor = recurrence.FormatDate(recurrence.StartOfDay(now))
	}
	rule.AnchorDate = anchor

	return Template{
		ID:          "template-" + uuid.NewString(),
		Name:        src.Title,
		Description: fmt.Sprintf("基于任务 %q 创建的模板", src.Title),
		Title:       src.Title,
		Funds:       cloneStrings(src.Funds),
		LP:          cloneStrings(src.LP),
		Portfolio:   cloneStrings(src.Portfolio),
		Tags:        cloneStrings(src.Tags),
		Checklist:   cloneChecklist(src.Checklist),
		Priority:    priorityOrDefault(src.Priority),
		Recurrence:  rule,
		DueRule:     DueRule{},
		CreatedAt:   now.Format(time.RFC3339),
	}
}
